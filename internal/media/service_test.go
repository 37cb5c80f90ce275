package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearcher is a mock implementation of Searcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, expression string, maxResults int) ([]Asset, error) {
	args := m.Called(ctx, expression, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Asset), args.Error(1)
}

func TestService_ListFolder(t *testing.T) {
	t.Run("reshapes results", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, "resource_type:video AND folder:videos/tutorials", 20).Return([]Asset{
			{PublicID: "videos/tutorials/planting-basics", SecureURL: "https://cdn.example.com/v1/planting-basics.mp4"},
			{PublicID: "videos/tutorials/composting", SecureURL: "https://cdn.example.com/v1/composting.mp4"},
		}, nil)

		svc := NewService(searcher, nil)
		videos, err := svc.ListFolder(context.Background(), "tutorials")

		assert.NoError(t, err)
		assert.Equal(t, []Video{
			{Title: "planting-basics", URL: "https://cdn.example.com/v1/planting-basics.mp4"},
			{Title: "composting", URL: "https://cdn.example.com/v1/composting.mp4"},
		}, videos)
		searcher.AssertExpectations(t)
	})

	t.Run("empty folder is not an empty list", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything, 20).Return([]Asset{}, nil)

		svc := NewService(searcher, nil)
		videos, err := svc.ListFolder(context.Background(), "empty")

		assert.ErrorIs(t, err, ErrNoVideos)
		assert.Nil(t, videos)
	})

	t.Run("upstream failure carries details", func(t *testing.T) {
		cause := errors.New("api rate limit exceeded")
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, mock.Anything, 20).Return(nil, cause)

		svc := NewService(searcher, nil)
		_, err := svc.ListFolder(context.Background(), "tutorials")

		var upstream *UpstreamError
		assert.ErrorAs(t, err, &upstream)
		assert.ErrorIs(t, err, cause)
	})
}
