package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "seedbank/internal/errors"
	"seedbank/internal/model"
	"seedbank/internal/repository"
)

// ContextUserKey is the echo context key under which the extractor stores
// the authenticated user.
const ContextUserKey = "currentUser"

// Extractor turns a bearer token into the full authenticated user record.
type Extractor struct {
	tokens *TokenService
	users  repository.UserRepository
}

// NewExtractor creates an auth extractor.
func NewExtractor(tokens *TokenService, users repository.UserRepository) *Extractor {
	return &Extractor{tokens: tokens, users: users}
}

// Middleware authenticates the request. The Authorization header must be
// exactly "Bearer <token>"; a missing or malformed header is rejected
// before the store is ever queried. A verified token whose subject is not
// a well-formed record id is a 400, not a 401: the caller authenticated,
// but the referenced identity is garbled.
func (e *Extractor) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.Split(header, " ")
			if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "unauthorized: no token provided",
					Code:  "UNAUTHENTICATED",
				})
			}

			claims, err := e.tokens.Verify(parts[1])
			if err != nil {
				switch err {
				case ErrTokenExpired:
					return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
						Error: err.Error(),
						Code:  "TOKEN_EXPIRED",
					})
				case ErrMissingSecret:
					return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
						Error: "server error",
						Code:  "INTERNAL_ERROR",
					})
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
						Error: err.Error(),
						Code:  "INVALID_TOKEN",
					})
				}
			}

			if !model.ValidID(claims.UserID) {
				return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
					Error: apperrors.ErrMalformedIdentity.Error(),
					Code:  "MALFORMED_IDENTITY",
				})
			}

			user, err := e.users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
						Error: apperrors.ErrUserNotFound.Error(),
						Code:  "USER_NOT_FOUND",
					})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by the middleware, if any.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
