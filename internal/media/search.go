package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
)

// Asset is the slice of an upstream search result this service cares about.
type Asset struct {
	PublicID  string
	SecureURL string
}

// Searcher runs one search query against the hosted media API.
type Searcher interface {
	Search(ctx context.Context, expression string, maxResults int) ([]Asset, error)
}

// CloudinarySearcher is the production Searcher backed by the Cloudinary
// admin search API.
type CloudinarySearcher struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinarySearcher builds a searcher from account credentials.
func NewCloudinarySearcher(cloudName, apiKey, apiSecret string) (*CloudinarySearcher, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinarySearcher{cld: cld}, nil
}

// Search executes the expression sorted newest-first, capped at maxResults.
func (s *CloudinarySearcher) Search(ctx context.Context, expression string, maxResults int) ([]Asset, error) {
	result, err := s.cld.Admin.Search(ctx, search.Query{
		Expression: expression,
		SortBy:     []search.SortByField{{"created_at": search.Descending}},
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, err
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary search: %s", result.Error.Message)
	}

	assets := make([]Asset, 0, len(result.Assets))
	for _, a := range result.Assets {
		assets = append(assets, Asset{PublicID: a.PublicID, SecureURL: a.SecureURL})
	}
	return assets, nil
}
