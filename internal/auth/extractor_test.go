package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"seedbank/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func runExtractor(t *testing.T, repo *MockUserRepository, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	tokens := NewTokenService("test-secret")
	extractor := NewExtractor(tokens, repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/user-profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "no user in context")
		}
		return c.JSON(http.StatusOK, user)
	}

	return rec, extractor.Middleware()(next)(c)
}

func TestExtractor_NoHeaderNeverQueriesStore(t *testing.T) {
	repo := new(MockUserRepository)

	_, err := runExtractor(t, repo, "")

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestExtractor_MalformedHeader(t *testing.T) {
	tokens := NewTokenService("test-secret")
	token, err := tokens.Issue(model.NewID(), "user")
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"scheme only", "Bearer"},
		{"three parts", "Bearer " + token + " extra"},
		{"wrong scheme", "Basic " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			_, err := runExtractor(t, repo, tt.header)

			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
			repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

func TestExtractor_InvalidToken(t *testing.T) {
	repo := new(MockUserRepository)

	forged, err := NewTokenService("other-secret").Issue(model.NewID(), "user")
	assert.NoError(t, err)

	_, err = runExtractor(t, repo, "Bearer "+forged)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestExtractor_MalformedIdentityIs400(t *testing.T) {
	repo := new(MockUserRepository)

	// Valid signature, garbage subject: authenticated but unusable identity.
	token, err := NewTokenService("test-secret").Issue("not-a-hex-id", "user")
	assert.NoError(t, err)

	_, err = runExtractor(t, repo, "Bearer "+token)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestExtractor_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	userID := model.NewID()
	repo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	token, err := NewTokenService("test-secret").Issue(userID, "user")
	assert.NoError(t, err)

	_, err = runExtractor(t, repo, "Bearer "+token)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	repo.AssertExpectations(t)
}

func TestExtractor_SuccessStripsPassword(t *testing.T) {
	repo := new(MockUserRepository)
	userID := model.NewID()
	repo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:           userID,
		Username:     "a1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret-hash",
		Role:         "user",
	}, nil)

	token, err := NewTokenService("test-secret").Issue(userID, "user")
	assert.NoError(t, err)

	rec, err := runExtractor(t, repo, "Bearer "+token)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"a1"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
	repo.AssertExpectations(t)
}
