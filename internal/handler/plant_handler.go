package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedbank/internal/errors"
	"seedbank/internal/service"
)

// PlantHandler handles plant tracking endpoints.
type PlantHandler struct {
	plantService service.PlantService
}

// NewPlantHandler creates a new plant handler.
func NewPlantHandler(plantService service.PlantService) *PlantHandler {
	return &PlantHandler{plantService: plantService}
}

// AddPlantRequest represents a plant creation request.
type AddPlantRequest struct {
	UserID    string `json:"userId" validate:"required"`
	PlantName string `json:"plantName" validate:"required"`
}

// AddPlant godoc
// @Summary Add a plant for a user
// @Tags plants
// @Accept json
// @Produce json
// @Param request body AddPlantRequest true "Plant data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /plants [post]
func (h *PlantHandler) AddPlant(c echo.Context) error {
	var req AddPlantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "user id and plant name are required",
			Code:  "VALIDATION_ERROR",
		})
	}

	plant, err := h.plantService.AddPlant(c.Request().Context(), req.UserID, req.PlantName)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "plant added successfully",
		"plant":   plant,
	})
}

// ListPlants godoc
// @Summary List a user's plants
// @Tags plants
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} model.Plant
// @Failure 500 {object} errors.ErrorResponse
// @Router /plants/{userId} [get]
func (h *PlantHandler) ListPlants(c echo.Context) error {
	plants, err := h.plantService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, plants)
}
