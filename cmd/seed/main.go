package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"seedbank/internal/config"
	"seedbank/internal/db"
	"seedbank/internal/model"
	"seedbank/internal/repository"
)

// Demo data inserted for local development.
var starterPlants = []string{"Tomato", "Basil", "Sunflower"}

var starterSeedRequests = []struct {
	seedType    string
	description string
}{
	{"heirloom tomato", "Looking for Cherokee Purple seeds for a raised bed."},
	{"pumpkin", "Want to grow pumpkins with the kids this season."},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Plant{}, &model.SeedRequest{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	plantRepo := repository.NewPlantRepository(gormDB)
	seedRequestRepo := repository.NewSeedRequestRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, "demo@seedbank.local")
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up demo user: %v", err)
	}
	if user != nil && err == nil {
		log.Println("Demo user already exists, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user = &model.User{
		ID:           model.NewID(),
		Name:         "Demo Gardener",
		Username:     "demo",
		Email:        "demo@seedbank.local",
		PasswordHash: string(hashed),
		Role:         "user",
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (password: password123)", user.Email)

	for _, name := range starterPlants {
		plant := &model.Plant{
			ID:        model.NewID(),
			UserID:    user.ID,
			PlantName: name,
			Progress:  0,
		}
		if err := plantRepo.Create(ctx, plant); err != nil {
			log.Fatalf("Failed to create plant %q: %v", name, err)
		}
	}
	log.Printf("Created %d starter plants", len(starterPlants))

	for _, sr := range starterSeedRequests {
		req := &model.SeedRequest{
			ID:          model.NewID(),
			UserID:      user.ID,
			SeedType:    sr.seedType,
			Description: sr.description,
			Status:      model.StatusPending,
			Progress:    model.ProgressMap{},
		}
		if err := seedRequestRepo.Create(ctx, req); err != nil {
			log.Fatalf("Failed to create seed request %q: %v", sr.seedType, err)
		}
	}
	log.Printf("Created %d starter seed requests", len(starterSeedRequests))

	log.Println("Seed script finished")
}
