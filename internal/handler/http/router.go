package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrewyazura/birthday-api/internal/config"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
	"github.com/andrewyazura/birthday-api/internal/handler/http/middleware"
	"github.com/andrewyazura/birthday-api/internal/service"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(
	authService *service.AuthService,
	birthdayService *service.BirthdayService,
	tokens domainService.TokenService,
	cfg *config.Config,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CorsMiddleware(cfg.CORS.AllowedOrigin))

	authHandler := NewAuthHandler(logger, authService, cfg.Auth)
	birthdayHandler := NewBirthdayHandler(logger, birthdayService)
	adminHandler := NewAdminHandler(logger, birthdayService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public endpoints.
	router.GET("/public-key", authHandler.PublicKey)
	router.GET("/login", authHandler.Login)
	router.GET("/admin/login", authHandler.AdminLogin)

	// Session-protected endpoints.
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens, cfg.Auth.CookieName, logger))
	{
		protected.GET("/logout", authHandler.Logout)

		birthdays := protected.Group("/birthdays")
		{
			birthdays.GET("", birthdayHandler.List)
			birthdays.POST("", birthdayHandler.Create)
			birthdays.GET("/:id", birthdayHandler.Get)
			birthdays.PUT("/:id", birthdayHandler.Update)
			birthdays.DELETE("/:id", birthdayHandler.Delete)

			// Static routes win over :id, so these stay under /birthdays
			// as the original API shaped them.
			admin := birthdays.Group("")
			admin.Use(middleware.AdminMiddleware(logger))
			{
				admin.GET("/incoming", adminHandler.Incoming)
				admin.GET("/all", adminHandler.All)
			}
		}
	}

	return router
}
