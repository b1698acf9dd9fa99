package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/andrewyazura/birthday-api/internal/config"
	postgresRepo "github.com/andrewyazura/birthday-api/internal/domain/repository/postgres"
	domainService "github.com/andrewyazura/birthday-api/internal/domain/service"
	httpHandler "github.com/andrewyazura/birthday-api/internal/handler/http"
	dbPostgres "github.com/andrewyazura/birthday-api/internal/infrastructure/database/postgres"
	"github.com/andrewyazura/birthday-api/internal/infrastructure/security"
	"github.com/andrewyazura/birthday-api/internal/service"
	"github.com/andrewyazura/birthday-api/internal/utils/logger"
	"github.com/andrewyazura/birthday-api/migrations"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, appLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(cfg.Database, appLogger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	pool, err := dbPostgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()
	appLogger.Info("connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	userRepo := postgresRepo.NewUserRepositoryPostgres(pool)
	birthdayRepo := postgresRepo.NewBirthdayRepositoryPostgres(pool)

	telegramVerifier := security.NewTelegramVerifier(cfg.Auth.BotToken)
	botTokenVerifier, err := security.NewBotTokenDecryptor(
		cfg.Auth.PrivateKeyPEMFile, cfg.Auth.PublicKeyPEMFile, cfg.Auth.BotToken,
	)
	if err != nil {
		return fmt.Errorf("failed to load key material: %w", err)
	}
	tokenService, err := security.NewHMACTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to build token service: %w", err)
	}

	authService := service.NewAuthService(appLogger, userRepo, telegramVerifier, botTokenVerifier, tokenService)
	birthdayService := service.NewBirthdayService(
		appLogger, userRepo, birthdayRepo, domainService.NewBirthdayValidator(),
	)

	router := httpHandler.SetupRouter(authService, birthdayService, tokenService, cfg, appLogger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		appLogger.Info("http server listening", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
		appLogger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
