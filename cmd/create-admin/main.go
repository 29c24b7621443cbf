package main

import (
	"context"
	"flag"

	"lawmatters-backend/config"
	"lawmatters-backend/db"
	"lawmatters-backend/repository"
	"lawmatters-backend/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// create-admin seeds (or verifies) the Admin account outside the server
// process, for environments where ADMIN_PASSWORD is not set on the server.
func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "admin email (defaults to ADMIN_EMAIL)")
	password := flag.String("password", "", "admin password (defaults to ADMIN_PASSWORD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if *email == "" {
		*email = cfg.AdminEmail
	}
	if *password == "" {
		*password = cfg.AdminPassword
	}
	if *password == "" {
		logger.Fatal("no admin password given; set ADMIN_PASSWORD or pass -password")
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SessionTTL, logger)

	if err := authService.EnsureAdmin(ctx, *email, *password); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	logger.Info("admin account ready", zap.String("email", *email))
}
