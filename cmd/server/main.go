package main

import (
	"context"
	"log"
	"net/http"

	"seedbank/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"seedbank/internal/auth"
	"seedbank/internal/cache"
	"seedbank/internal/config"
	"seedbank/internal/db"
	"seedbank/internal/handler"
	"seedbank/internal/media"
	"seedbank/internal/model"
	"seedbank/internal/repository"
	"seedbank/internal/router"
	"seedbank/internal/service"
	"seedbank/internal/storage"
)

// @title Seedbank API
// @version 1.0
// @description Gardening and seed exchange backend: users, plants, seed requests and folder video listings.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; login and token verification will fail")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Plant{},
		&model.SeedRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	plantRepo := repository.NewPlantRepository(gormDB)
	seedRequestRepo := repository.NewSeedRequestRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	extractor := auth.NewExtractor(tokenService, userRepo)

	// Initialize upload storage
	uploads, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize the media searcher
	searcher, err := media.NewCloudinarySearcher(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		log.Fatalf("cloudinary init: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, cacheClient, uploads)
	plantService := service.NewPlantService(plantRepo)
	seedRequestService := service.NewSeedRequestService(seedRequestRepo)
	mediaService := media.NewService(searcher, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	plantHandler := handler.NewPlantHandler(plantService)
	seedRequestHandler := handler.NewSeedRequestHandler(seedRequestService)
	videoHandler := handler.NewVideoHandler(mediaService)

	// Register routes
	router.Register(
		e,
		extractor,
		authHandler,
		userHandler,
		plantHandler,
		seedRequestHandler,
		videoHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Storage(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	}
	return storage.NewDiskStorage(cfg.UploadDir), nil
}
