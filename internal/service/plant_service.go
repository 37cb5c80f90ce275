package service

import (
	"context"
	"fmt"

	"seedbank/internal/model"
	"seedbank/internal/repository"
)

// PlantService exposes plant tracking operations.
type PlantService interface {
	AddPlant(ctx context.Context, userID, plantName string) (*model.Plant, error)
	ListByUser(ctx context.Context, userID string) ([]model.Plant, error)
}

type plantService struct {
	repo repository.PlantRepository
}

// NewPlantService builds a PlantService.
func NewPlantService(repo repository.PlantRepository) PlantService {
	return &plantService{repo: repo}
}

// AddPlant records a new plant for the user at zero progress. The user id
// is trusted as supplied; there is no referential check.
func (s *plantService) AddPlant(ctx context.Context, userID, plantName string) (*model.Plant, error) {
	plant := &model.Plant{
		ID:        model.NewID(),
		UserID:    userID,
		PlantName: plantName,
		Progress:  0,
	}

	if err := s.repo.Create(ctx, plant); err != nil {
		return nil, fmt.Errorf("create plant: %w", err)
	}
	return plant, nil
}

// ListByUser returns the user's plants, newest first.
func (s *plantService) ListByUser(ctx context.Context, userID string) ([]model.Plant, error) {
	return s.repo.ListByUser(ctx, userID)
}
