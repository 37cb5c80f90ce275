package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"seedbank/internal/errors"
	"seedbank/internal/media"
)

// MockMediaService is a mock implementation of media.Service.
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) ListFolder(ctx context.Context, folder string) ([]media.Video, error) {
	args := m.Called(ctx, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]media.Video), args.Error(1)
}

func runVideoHandler(t *testing.T, svc media.Service, folder string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/videos/"+folder, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folder")
	c.SetParamValues(folder)

	return rec, NewVideoHandler(svc).ListFolder(c)
}

func TestVideoHandler_ListFolder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockMediaService)
		svc.On("ListFolder", mock.Anything, "tutorials").Return([]media.Video{
			{Title: "composting", URL: "https://cdn.example.com/v1/composting.mp4"},
		}, nil)

		rec, err := runVideoHandler(t, svc, "tutorials")

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var videos []media.Video
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
		assert.Len(t, videos, 1)
		assert.Equal(t, "composting", videos[0].Title)
	})

	t.Run("empty folder is a 404, not an empty list", func(t *testing.T) {
		svc := new(MockMediaService)
		svc.On("ListFolder", mock.Anything, "empty").Return(nil, media.ErrNoVideos)

		_, err := runVideoHandler(t, svc, "empty")

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("upstream failure reports details", func(t *testing.T) {
		svc := new(MockMediaService)
		svc.On("ListFolder", mock.Anything, "tutorials").Return(nil, &media.UpstreamError{Err: assert.AnError})

		_, err := runVideoHandler(t, svc, "tutorials")

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)

		resp, ok := httpErr.Message.(errors.ErrorResponse)
		assert.True(t, ok)
		assert.Equal(t, "UPSTREAM_ERROR", resp.Code)
		assert.Equal(t, assert.AnError.Error(), resp.Details)
	})
}
