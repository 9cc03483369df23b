package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/core/services"
	"github.com/pharmastock/pharmastock_backend/internal/handlers"
	"github.com/pharmastock/pharmastock_backend/internal/middleware"
	"github.com/pharmastock/pharmastock_backend/internal/platform/config"
	"github.com/pharmastock/pharmastock_backend/internal/repositories/memory"
	"github.com/pharmastock/pharmastock_backend/internal/utils"
)

// @title PharmaStock Backend API
// @version 1.0
// @description Inventory and sales backend for the pharmacy dashboard.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the in-memory ledgers
	itemRepo := memory.NewItemRepository()
	txnRepo := memory.NewTransactionRepository()
	userRepo := memory.NewUserRepository()

	ctx := context.Background()

	if err := seedAdminUser(ctx, userRepo, cfg); err != nil {
		logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.SeedSampleData {
		if err := memory.SeedSampleData(ctx, itemRepo, txnRepo); err != nil {
			logger.Error("Failed to seed sample data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Sample data loaded into the in-memory ledgers")
	}

	serviceContainer := &portssvc.ServiceContainer{
		Item:        services.NewItemService(itemRepo),
		Transaction: services.NewTransactionService(txnRepo, itemRepo),
		Reporting:   services.NewReportingService(txnRepo, itemRepo),
		User:        services.NewUserService(userRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedAdminUser creates the bootstrap administrator account from config.
func seedAdminUser(ctx context.Context, userRepo *memory.UserRepository, cfg *config.Config) error {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminUsername + "@pharmastock.local",
		Role:         domain.RoleAdministrator,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	return userRepo.SaveUser(ctx, admin)
}
