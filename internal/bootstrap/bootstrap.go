package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/controllers"
	"github.com/internhub/internhub/internal/app/repositories"
	"github.com/internhub/internhub/internal/app/routes"
	"github.com/internhub/internhub/internal/app/services"
	"github.com/internhub/internhub/internal/config"
	"github.com/internhub/internhub/internal/db"
	"github.com/internhub/internhub/internal/middleware"
	"github.com/internhub/internhub/internal/pkg/auth"
	"github.com/internhub/internhub/internal/pkg/logger"
	"github.com/internhub/internhub/internal/seed"
)

const migrationsPath = "migrations"

// Application holds the assembled application state
type Application struct {
	Config     *config.Config
	DB         *db.PostgresDB
	Router     *gin.Engine
	JWTService *auth.JWTService
}

// InitializeApplication loads configuration, connects the database,
// applies migrations and seed data, and wires the HTTP router.
func InitializeApplication(configPath string) (*Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(database); err != nil {
		database.Close()
		return nil, err
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.Run(seedCtx, database.Pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  config.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: config.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, jwtService, cfg)
	ctrls := controllers.NewControllers(svcs, database.Pool)

	router := setupRouter(cfg)
	routes.SetupRouter(router, ctrls, jwtService)

	logger.Info().
		Str("mode", cfg.Server.Mode).
		Str("port", cfg.Server.Port).
		Msg("Application initialized")

	return &Application{
		Config:     cfg,
		DB:         database,
		Router:     router,
		JWTService: jwtService,
	}, nil
}

// runMigrations applies pending goose migrations at startup
func runMigrations(database *db.PostgresDB) error {
	migrator, err := db.NewMigrator(database.Pool, migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		if cerr := migrator.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Failed to close migrator")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrator.Run(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := migrator.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info().Int64("version", version).Msg("Database migrations applied")

	return nil
}

// setupRouter creates the gin engine with the shared middleware chain
func setupRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "production" || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	return router
}
