//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rentmarket/internal/pkg/config"
	"rentmarket/internal/pkg/identity"
	appjwt "rentmarket/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external identity provider would.
// The service itself only validates tokens, so tests mint their own.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role identity.Role) string {
	t.Helper()
	return h.signToken(t, userID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role identity.Role) string {
	t.Helper()
	return h.signToken(t, userID, role, time.Now().Add(-time.Hour))
}

func (h *JWTHelper) signToken(t *testing.T, userID uuid.UUID, role identity.Role, expiresAt time.Time) string {
	t.Helper()

	claims := appjwt.Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return signed
}
