package repository

import (
	"context"

	"gorm.io/gorm"

	"seedbank/internal/model"
)

// PlantRepository defines persistence operations for plants.
type PlantRepository interface {
	Create(ctx context.Context, plant *model.Plant) error
	ListByUser(ctx context.Context, userID string) ([]model.Plant, error)
}

type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository builds a GORM-backed repository.
func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(ctx context.Context, plant *model.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *plantRepository) ListByUser(ctx context.Context, userID string) ([]model.Plant, error) {
	var plants []model.Plant
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}
