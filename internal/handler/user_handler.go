package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedbank/internal/auth"
	"seedbank/internal/errors"
	"seedbank/internal/service"
	"seedbank/internal/storage"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// CurrentProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/user-profile [get]
func (h *UserHandler) CurrentProfile(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "unauthorized: no token provided",
			Code:  "UNAUTHENTICATED",
		})
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update a user's profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Param userId path string true "User id"
// @Param name formData string false "Name"
// @Param username formData string false "Username"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param profileImage formData file false "Profile image"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{userId} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	fields := service.ProfileUpdate{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
	}

	// Parse stage: turn the multipart part, when present, into a typed
	// upload descriptor before any business logic runs.
	var upload *storage.Upload
	if fh, err := c.FormFile("profileImage"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "server error",
				Code:  "INTERNAL_ERROR",
			})
		}
		defer src.Close()
		upload = &storage.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     src,
		}
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), c.Param("userId"), fields, upload)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "profile updated successfully",
		"user":    user,
	})
}
