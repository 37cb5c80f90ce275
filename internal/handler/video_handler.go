package handler

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"seedbank/internal/errors"
	"seedbank/internal/media"
)

// VideoHandler handles the media listing proxy endpoint.
type VideoHandler struct {
	mediaService media.Service
}

// NewVideoHandler creates a new video handler.
func NewVideoHandler(mediaService media.Service) *VideoHandler {
	return &VideoHandler{mediaService: mediaService}
}

// ListFolder godoc
// @Summary List videos in a folder
// @Tags videos
// @Produce json
// @Param folder path string true "Folder name"
// @Success 200 {array} media.Video
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /videos/{folder} [get]
func (h *VideoHandler) ListFolder(c echo.Context) error {
	videos, err := h.mediaService.ListFolder(c.Request().Context(), c.Param("folder"))
	if err != nil {
		if goerrors.Is(err, media.ErrNoVideos) {
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "NO_VIDEOS_FOUND",
			})
		}
		var upstream *media.UpstreamError
		if goerrors.As(err, &upstream) {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error:   "server error fetching videos",
				Code:    "UPSTREAM_ERROR",
				Details: upstream.Err.Error(),
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "server error fetching videos",
			Code:  "UPSTREAM_ERROR",
		})
	}
	return c.JSON(http.StatusOK, videos)
}
