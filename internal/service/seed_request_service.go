package service

import (
	"context"
	"fmt"

	apperrors "seedbank/internal/errors"
	"seedbank/internal/model"
	"seedbank/internal/repository"
)

// SeedRequestService exposes seed request operations.
type SeedRequestService interface {
	Create(ctx context.Context, userID, seedType, description, imagePath string) (*model.SeedRequest, error)
	ListByUser(ctx context.Context, userID, status string) ([]model.SeedRequest, error)
}

type seedRequestService struct {
	repo repository.SeedRequestRepository
}

// NewSeedRequestService builds a SeedRequestService.
func NewSeedRequestService(repo repository.SeedRequestRepository) SeedRequestService {
	return &seedRequestService{repo: repo}
}

// Create records a new pending seed request with an empty progress map.
func (s *seedRequestService) Create(ctx context.Context, userID, seedType, description, imagePath string) (*model.SeedRequest, error) {
	req := &model.SeedRequest{
		ID:          model.NewID(),
		UserID:      userID,
		SeedType:    seedType,
		Description: description,
		ImagePath:   imagePath,
		Status:      model.StatusPending,
		Progress:    model.ProgressMap{},
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create seed request: %w", err)
	}
	return req, nil
}

// ListByUser returns the user's seed requests, newest first, optionally
// filtered by status. All four statuses, including released, are accepted.
func (s *seedRequestService) ListByUser(ctx context.Context, userID, status string) ([]model.SeedRequest, error) {
	if status == "" {
		return s.repo.ListByUser(ctx, userID)
	}
	if !model.ValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.repo.ListByUserAndStatus(ctx, userID, status)
}
