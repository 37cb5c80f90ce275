package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"seedbank/internal/cache"
)

const (
	maxResults = 20
	listingTTL = 5 * time.Minute
)

// ErrNoVideos is returned when the upstream call succeeds but the folder
// holds no videos. The API reports this as 404, never as an empty 200 list.
var ErrNoVideos = errors.New("no videos found in the specified folder")

// UpstreamError wraps a transport or API failure from the hosted media
// service. The cause is reported in the response details.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "server error fetching videos: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Video is one playable entry in a folder listing.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Service lists videos by folder through the upstream search API.
type Service interface {
	ListFolder(ctx context.Context, folder string) ([]Video, error)
}

type service struct {
	searcher Searcher
	cache    *cache.Client
}

// NewService builds the folder listing service.
func NewService(searcher Searcher, cache *cache.Client) Service {
	return &service{searcher: searcher, cache: cache}
}

func cacheKey(folder string) string {
	return "videos:" + folder
}

// ListFolder runs one constrained search against the upstream API and
// reshapes the results. Non-empty listings are cached per folder.
func (s *service) ListFolder(ctx context.Context, folder string) ([]Video, error) {
	if data, _ := s.cache.Get(ctx, cacheKey(folder)); data != nil {
		var cached []Video
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	expression := fmt.Sprintf("resource_type:video AND folder:videos/%s", folder)
	assets, err := s.searcher.Search(ctx, expression, maxResults)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if len(assets) == 0 {
		return nil, ErrNoVideos
	}

	videos := make([]Video, 0, len(assets))
	for _, asset := range assets {
		videos = append(videos, Video{
			Title: path.Base(asset.PublicID),
			URL:   asset.SecureURL,
		})
	}

	if payload, err := json.Marshal(videos); err == nil {
		_ = s.cache.Set(ctx, cacheKey(folder), payload, listingTTL)
	}
	return videos, nil
}
