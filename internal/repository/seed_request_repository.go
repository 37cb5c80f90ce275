package repository

import (
	"context"

	"gorm.io/gorm"

	"seedbank/internal/model"
)

// SeedRequestRepository defines persistence operations for seed requests.
type SeedRequestRepository interface {
	Create(ctx context.Context, req *model.SeedRequest) error
	ListByUser(ctx context.Context, userID string) ([]model.SeedRequest, error)
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]model.SeedRequest, error)
}

type seedRequestRepository struct {
	db *gorm.DB
}

// NewSeedRequestRepository builds a GORM-backed repository.
func NewSeedRequestRepository(db *gorm.DB) SeedRequestRepository {
	return &seedRequestRepository{db: db}
}

func (r *seedRequestRepository) Create(ctx context.Context, req *model.SeedRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *seedRequestRepository) ListByUser(ctx context.Context, userID string) ([]model.SeedRequest, error) {
	var reqs []model.SeedRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *seedRequestRepository) ListByUserAndStatus(ctx context.Context, userID, status string) ([]model.SeedRequest, error) {
	var reqs []model.SeedRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
