package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewyazura/birthday-api/internal/config"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
	"github.com/andrewyazura/birthday-api/internal/service"
)

// AuthHandler handles the login, logout and public-key endpoints.
type AuthHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
	cfg         config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *zap.Logger, authService *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger.Named("auth_handler"),
		authService: authService,
		cfg:         cfg,
	}
}

// PublicKey returns the PEM-encoded public key used to encrypt the bot
// token.
// GET /public-key
func (h *AuthHandler) PublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.authService.PublicKeyPEM()})
}

// Login verifies the caller's credentials and sets the session cookie.
// The query carries either the login-widget fields (id, ..., hash) or
// encrypted_bot_id plus the id of the account being logged in.
// GET /login
func (h *AuthHandler) Login(c *gin.Context) {
	var token string
	var err error

	if encrypted := c.Query("encrypted_bot_id"); encrypted != "" {
		token, _, err = h.authService.LoginWithBotToken(c.Request.Context(), encrypted, c.Query("id"))
	} else {
		token, _, err = h.authService.LoginWithWidget(c.Request.Context(), widgetData(c))
	}
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Status(http.StatusOK)
}

// AdminLogin verifies the encrypted bot token and sets an elevated
// session cookie.
// GET /admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	token, err := h.authService.AdminLogin(c.Request.Context(), c.Query("encrypted_bot_id"))
	if err != nil {
		AbortWithError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Status(http.StatusOK)
}

// Logout clears the session cookie. Tokens are not revoked server-side;
// they expire naturally.
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"msg": "logout successful"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	if h.cfg.CookieSecure {
		// Cross-site widget logins need SameSite=None, which browsers
		// only accept on secure cookies.
		c.SetSameSite(http.SameSiteNoneMode)
	}
	maxAge := int(h.cfg.TokenTTL.Seconds())
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.CookieName, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

// widgetData flattens the request query into the verifier's input mapping.
func widgetData(c *gin.Context) domainService.TelegramAuthData {
	data := make(domainService.TelegramAuthData)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data
}
