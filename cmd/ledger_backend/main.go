package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/handlers"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/memory"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_core/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// seedActor is recorded as the creator of accounts provisioned at startup.
const seedActor = "system"

// @title Bookkeeping Core API
// @version 1.0
// @description Double-entry ledger: accounts, journal entries, postings and reports.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos, cleanup, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	svc := services.NewServiceContainer(cfg, repos)
	if cfg.SeedDefaultAccounts {
		if svc, err = seedChart(ctx, cfg, repos, svc, logger); err != nil {
			logger.Error("Failed to seed chart of accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (CORS, logging, recovery)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err = r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writeLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc, writeLimiter)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageDriver),
		slog.String("ledger_timezone", cfg.LedgerLocation.String()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStorage builds the repositories for the configured driver. The returned
// cleanup releases whatever the driver holds.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; the ledger is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool, cfg.PostingLockTimeout), func() { database.ClosePgxPool(dbPool) }, nil
}

// seedChart provisions the default chart and binds any posting role left
// unconfigured to its default account. The container is rebuilt when a role
// changes so the journal engine sees the new bindings.
func seedChart(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, svc *portssvc.ServiceContainer, logger *slog.Logger) (*portssvc.ServiceContainer, error) {
	if _, err := svc.Account.SeedDefaultChart(ctx, seedActor); err != nil {
		return nil, err
	}
	active, err := svc.Account.ListActiveAccounts(ctx, "")
	if err != nil {
		return nil, err
	}

	filled := cfg.DesignatedAccounts.FillFromChart(active)
	if filled == cfg.DesignatedAccounts {
		return svc, nil
	}
	cfg.DesignatedAccounts = filled
	logger.Info("Posting roles bound to default chart accounts",
		slog.String("cash", filled.CashAccountID),
		slog.String("sales", filled.SalesAccountID),
		slog.String("receivable", filled.ReceivableAccountID),
		slog.String("adjustment", filled.AdjustmentAccountID))
	return services.NewServiceContainer(cfg, repos), nil
}
