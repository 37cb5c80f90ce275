package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "seedbank/internal/errors"
	"seedbank/internal/model"
	"seedbank/internal/storage"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, upload *storage.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := model.NewID()

	t.Run("partial update leaves other fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Name:     "Old Name",
			Username: "old",
			Email:    "old@x.com",
			Phone:    "111",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil, new(MockStorage))
		user, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{Name: "New Name"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "old", user.Username)
		assert.Equal(t, "old@x.com", user.Email)
		assert.Equal(t, "111", user.Phone)
		mockRepo.AssertExpectations(t)
	})

	t.Run("upload is persisted before the reference is written", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		mockStorage := new(MockStorage)
		mockStorage.On("Save", mock.Anything, mock.AnythingOfType("*storage.Upload")).Return("uploads/1700000000000.png", nil)

		svc := NewUserService(mockRepo, nil, mockStorage)
		upload := &storage.Upload{
			Filename:    "avatar.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png-bytes"),
		}
		user, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{}, upload)

		assert.NoError(t, err)
		assert.Equal(t, "uploads/1700000000000.png", user.ProfileImage)
		mockStorage.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("failed upload does not touch the record", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)

		mockStorage := new(MockStorage)
		mockStorage.On("Save", mock.Anything, mock.Anything).Return("", assert.AnError)

		svc := NewUserService(mockRepo, nil, mockStorage)
		_, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{}, &storage.Upload{
			Filename: "avatar.png",
			Content:  strings.NewReader("png-bytes"),
		})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil, new(MockStorage))
		_, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{Name: "X"}, nil)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_GetUser(t *testing.T) {
	userID := model.NewID()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Username: "a1"}, nil)

		svc := NewUserService(mockRepo, nil, new(MockStorage))
		user, err := svc.GetUser(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "a1", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil, new(MockStorage))
		_, err := svc.GetUser(context.Background(), userID)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
