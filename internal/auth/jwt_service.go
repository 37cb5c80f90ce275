package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is the fixed lifetime of issued tokens. There is no refresh
// mechanism: a leaked token stays valid until natural expiry.
const TokenExpiry = time.Hour

var (
	// ErrMissingSecret is returned when the signing secret is not configured.
	// This is a startup-class misconfiguration; on a request path it surfaces
	// as a 500, never as an authentication failure.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	// ErrTokenExpired is returned when the token's expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when the signature or claims do not verify.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims represents the identity carried by an issued token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given secret. An empty
// secret is tolerated at construction so startup can proceed; Issue and
// Verify report ErrMissingSecret instead.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token binding the user id and role, expiring
// exactly one hour from now.
func (s *TokenService) Issue(userID, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
// An expired token yields ErrTokenExpired; any other failure yields
// ErrTokenInvalid. Both map to unauthorized at the HTTP layer.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
