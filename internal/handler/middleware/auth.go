package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"library-service/internal/domain/staff"
	"library-service/internal/handler/httperr"
	"library-service/internal/pkg/cookie"
	"library-service/internal/pkg/errs"
	"library-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrMissingToken      = errs.New("access token required")
	ErrInvalidToken      = errs.New("invalid or expired token")
	ErrInsufficientRole  = errs.New("insufficient permissions")
	ErrMissingStaffState = errs.New("staff context missing")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

var roleHierarchy = map[staff.Role]int{
	staff.RoleLibrarian: 1,
	staff.RoleAdmin:     2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrMissingToken, "Access token required", nil)
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrInvalidToken, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStaffRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, ErrMissingStaffState, httperr.MsgInternal, nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, ErrInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole staff.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOk := roleHierarchy[minRole]
	return ok && minOk && level >= minLevel
}

// extractToken prefers the Authorization header over the cookie.
func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if t := strings.TrimSpace(h[len("Bearer "):]); t != "" {
			return t
		}
	}
	return cookie.GetAccessToken(c)
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetStaffRole(c *gin.Context) (staff.Role, bool) {
	v, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(staff.Role)
	return role, ok
}
