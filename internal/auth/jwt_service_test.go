package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"seedbank/internal/model"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := model.NewID()

	token, err := svc.Issue(userID, "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	// Expiry is one hour out.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.True(t, remaining > 59*time.Minute && remaining <= time.Hour)
}

func TestTokenService_MissingSecret(t *testing.T) {
	svc := NewTokenService("")

	_, err := svc.Issue(model.NewID(), "user")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = svc.Verify("whatever")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := NewTokenService(secret)

	// Sign an already-expired token with the correct secret.
	claims := &Claims{
		UserID: model.NewID(),
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(model.NewID(), "user")
	assert.NoError(t, err)

	// Splice in a signature produced with a different secret.
	other := NewTokenService("other-secret")
	forged, err := other.Issue(model.NewID(), "user")
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + parts[1] + "." + forgedParts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongSigningMethodRejected(t *testing.T) {
	svc := NewTokenService("test-secret")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: model.NewID(),
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
