package middleware

import (
	"errors"
	"strings"

	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxRoleKey   = "role"
	CtxStatusKey = "status"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxRoleKey, claims.Role)
		c.Locals(CtxStatusKey, claims.Status)

		return c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Runs after
// Middleware, which stores the role claim in locals.
func (m *AuthMiddleware) RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if role == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if _, ok := allowed[role]; !ok {
			return NewAppError(fiber.StatusForbidden, "Insufficient permissions", nil, nil)
		}
		return c.Next()
	}
}

// RequireActiveAccount rejects suspended, banned, and pending accounts.
func (m *AuthMiddleware) RequireActiveAccount() fiber.Handler {
	return func(c fiber.Ctx) error {
		status, _ := c.Locals(CtxStatusKey).(string)
		switch status {
		case user.StatusSuspended:
			return NewAppError(fiber.StatusForbidden, "Account suspended. Please contact admin.", nil, nil)
		case user.StatusBanned:
			return NewAppError(fiber.StatusForbidden, "Account banned. Please contact admin.", nil, nil)
		case user.StatusPending:
			return NewAppError(fiber.StatusForbidden, "Account pending approval.", nil, nil)
		}
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
