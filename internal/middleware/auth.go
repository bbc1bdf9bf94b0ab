package middleware

import (
	"strings"

	"freehunt_backend/internal/auth"
	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/models"
	"freehunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller identity
// on the gin context. Websocket clients may pass the token as a query
// parameter since browsers cannot set headers on the upgrade request.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Missing authentication token"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, string(claims.Role))

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles allows the listed roles through; admins always pass.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(RoleFromContext(c))
		if role == models.UserRoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

func UserIDFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func RoleFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextRoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
