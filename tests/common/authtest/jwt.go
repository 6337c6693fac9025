//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"library-service/internal/domain/staff"
	"library-service/internal/pkg/config"
	"library-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
