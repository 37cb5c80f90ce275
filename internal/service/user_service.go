package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"seedbank/internal/cache"
	apperrors "seedbank/internal/errors"
	"seedbank/internal/model"
	"seedbank/internal/repository"
	"seedbank/internal/storage"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the optional profile fields of a partial update.
// Empty fields are left untouched.
type ProfileUpdate struct {
	Name     string
	Username string
	Email    string
	Phone    string
}

// UserService exposes profile operations.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, fields ProfileUpdate, upload *storage.Upload) (*model.User, error)
}

type userService struct {
	repo    repository.UserRepository
	cache   *cache.Client
	uploads storage.Storage
}

// NewUserService builds a UserService with repository, cache and upload storage.
func NewUserService(repo repository.UserRepository, cache *cache.Client, uploads storage.Storage) UserService {
	return &userService{repo: repo, cache: cache, uploads: uploads}
}

func (s *userService) cacheKey(id string) string {
	return "user:" + id
}

// GetUser returns the user by id, serving from cache when possible.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateProfile applies a partial update. When an upload accompanies the
// request it is persisted first and only the resulting reference path is
// written to the record.
func (s *userService) UpdateProfile(ctx context.Context, id string, fields ProfileUpdate, upload *storage.Upload) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if fields.Name != "" {
		user.Name = fields.Name
	}
	if fields.Username != "" {
		user.Username = fields.Username
	}
	if fields.Email != "" {
		user.Email = fields.Email
	}
	if fields.Phone != "" {
		user.Phone = fields.Phone
	}

	if upload != nil {
		path, err := s.uploads.Save(ctx, upload)
		if err != nil {
			return nil, fmt.Errorf("store profile image: %w", err)
		}
		user.ProfileImage = path
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}
