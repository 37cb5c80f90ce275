package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"seedbank/internal/auth"
	"seedbank/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	extractor *auth.Extractor,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	plantHandler *handler.PlantHandler,
	seedRequestHandler *handler.SeedRequestHandler,
	videoHandler *handler.VideoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	// Static route; registered alongside /:userId, echo prefers the exact match.
	users.GET("/user-profile", userHandler.CurrentProfile, extractor.Middleware())
	users.GET("/:userId", userHandler.GetUser)
	users.PUT("/:userId", userHandler.UpdateProfile)

	plants := e.Group("/plants")
	plants.POST("", plantHandler.AddPlant)
	plants.GET("/:userId", plantHandler.ListPlants)

	seedRequests := e.Group("/seed-requests")
	seedRequests.POST("", seedRequestHandler.Create)
	seedRequests.GET("", seedRequestHandler.List)

	e.GET("/videos/:folder", videoHandler.ListFolder)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
