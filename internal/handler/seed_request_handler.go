package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedbank/internal/errors"
	"seedbank/internal/service"
)

// SeedRequestHandler handles seed request endpoints.
type SeedRequestHandler struct {
	seedRequestService service.SeedRequestService
}

// NewSeedRequestHandler creates a new seed request handler.
func NewSeedRequestHandler(seedRequestService service.SeedRequestService) *SeedRequestHandler {
	return &SeedRequestHandler{seedRequestService: seedRequestService}
}

// CreateSeedRequestRequest represents a seed request submission.
type CreateSeedRequestRequest struct {
	UserID      string `json:"userId" validate:"required"`
	SeedType    string `json:"seedType" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImagePath   string `json:"imagePath"`
}

// Create godoc
// @Summary Submit a seed request
// @Tags seed-requests
// @Accept json
// @Produce json
// @Param request body CreateSeedRequestRequest true "Seed request data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed-requests [post]
func (h *SeedRequestHandler) Create(c echo.Context) error {
	var req CreateSeedRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	seedRequest, err := h.seedRequestService.Create(c.Request().Context(), req.UserID, req.SeedType, req.Description, req.ImagePath)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "seed request created successfully",
		"seedRequest": seedRequest,
	})
}

// List godoc
// @Summary List seed requests by user
// @Tags seed-requests
// @Produce json
// @Param userId query string true "User id"
// @Param status query string false "Status filter (pending, approved, released, rejected)"
// @Success 200 {array} model.SeedRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed-requests [get]
func (h *SeedRequestHandler) List(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "userId query parameter is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	requests, err := h.seedRequestService.ListByUser(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, requests)
}
