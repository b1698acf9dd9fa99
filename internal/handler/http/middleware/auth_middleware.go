package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
)

const (
	// Context keys set by AuthMiddleware for downstream handlers.
	ContextClaimsKey     = "claims"
	ContextTelegramIDKey = "telegram_id"
	ContextIsAdminKey    = "is_admin"

	authHeaderKey  = "Authorization"
	authTypeBearer = "bearer"
)

// unauthorized mirrors the error envelope without importing the handler
// package (which imports this one).
func unauthorized(c *gin.Context, status int, description string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":      status,
		"code":        status,
		"name":        http.StatusText(status),
		"description": description,
	})
}

// AuthMiddleware validates the session token carried in the configured
// cookie or in a Bearer header, and stores its claims in the context.
func AuthMiddleware(tokens domainService.TokenService, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			logger.Warn("session token missing", zap.String("path", c.Request.URL.Path))
			unauthorized(c, http.StatusUnauthorized, "Session token required")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("session token rejected", zap.Error(err), zap.String("path", c.Request.URL.Path))
			unauthorized(c, http.StatusUnauthorized, "Invalid or expired session token")
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextTelegramIDKey, claims.TelegramID)
		c.Set(ContextIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware rejects sessions without the elevated-privilege claim.
// It must run after AuthMiddleware.
func AdminMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdminKey) {
			logger.Warn("admin endpoint rejected non-admin session",
				zap.String("telegram_id", c.GetString(ContextTelegramIDKey)),
				zap.String("path", c.Request.URL.Path),
			)
			unauthorized(c, http.StatusForbidden, "Admins only")
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader(authHeaderKey)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], authTypeBearer) {
		return parts[1]
	}
	return ""
}
