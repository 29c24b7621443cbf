package main

import (
	"context"
	"net/http"

	"lawmatters-backend/config"
	"lawmatters-backend/db"
	"lawmatters-backend/handlers"
	"lawmatters-backend/middleware"
	"lawmatters-backend/repository"
	"lawmatters-backend/service"
	"lawmatters-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	store, err := storage.New(storage.Config{
		Type:         storage.Type(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		logger.Fatal("failed to initialize document storage", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	matterRepo := repository.NewMatterRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SessionTTL, logger)
	customerService := service.NewCustomerService(
		service.WithCustomerRepository(customerRepo),
	)
	matterService := service.NewMatterService(
		service.WithMatterRepository(matterRepo),
		service.WithMatterCustomerRepository(customerRepo),
	)
	documentService := service.NewDocumentService(documentRepo, matterRepo, customerRepo, store, logger)

	if cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Fatal("failed to seed admin account", zap.Error(err))
		}
	} else {
		logger.Warn("ADMIN_PASSWORD not set; skipping admin seed")
	}

	authHandler := handlers.NewAuthHandler(authService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)
	matterHandler := handlers.NewMatterHandler(matterService, logger)
	documentHandler := handlers.NewDocumentHandler(documentService, logger)

	router := buildRouter(cfg, pool, logger, authHandler, customerHandler, matterHandler, documentHandler, authService)

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildRouter(
	cfg config.App,
	pool *pgxpool.Pool,
	logger *zap.Logger,
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	matterHandler *handlers.MatterHandler,
	documentHandler *handlers.DocumentHandler,
	authService *service.AuthService,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigin))

	router.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := &middleware.Auth{AuthService: authService, Logger: logger}

	api := router.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("")
		authed.Use(auth.RequireAuth)
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/auth/me", authHandler.Me)

			authed.GET("/customers", customerHandler.List)
			authed.POST("/customers", customerHandler.Create)
			authed.GET("/customers/:customerId", customerHandler.Get)
			authed.PUT("/customers/:customerId", customerHandler.Update)
			authed.DELETE("/customers/:customerId", customerHandler.Delete)

			authed.GET("/customers/:customerId/matters", matterHandler.List)
			authed.POST("/customers/:customerId/matters", matterHandler.Create)
			authed.GET("/customers/:customerId/matters/:matterId", matterHandler.Get)
			authed.PUT("/customers/:customerId/matters/:matterId", matterHandler.Update)

			authed.GET("/customers/:customerId/matters/:matterId/documents", documentHandler.List)
			authed.POST("/customers/:customerId/matters/:matterId/documents", documentHandler.Upload)
			authed.GET("/customers/:customerId/matters/:matterId/documents/:documentId", documentHandler.Download)
			authed.DELETE("/customers/:customerId/matters/:matterId/documents/:documentId", documentHandler.Delete)
		}
	}

	return router
}
