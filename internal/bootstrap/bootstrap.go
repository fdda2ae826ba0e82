package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/okulsport/okulsport-backend/internal/app/controllers"
	appMigrations "github.com/okulsport/okulsport-backend/internal/app/migrations"
	appRepos "github.com/okulsport/okulsport-backend/internal/app/repositories"
	appRoutes "github.com/okulsport/okulsport-backend/internal/app/routes"
	appServices "github.com/okulsport/okulsport-backend/internal/app/services"
	"github.com/okulsport/okulsport-backend/internal/config"
	"github.com/okulsport/okulsport-backend/internal/db"
	appMiddleware "github.com/okulsport/okulsport-backend/internal/middleware"
	pkgAuth "github.com/okulsport/okulsport-backend/internal/pkg/auth"
	"github.com/okulsport/okulsport-backend/internal/pkg/helpers"
	"github.com/okulsport/okulsport-backend/internal/pkg/logger"
	"github.com/okulsport/okulsport-backend/internal/reference"
	"github.com/okulsport/okulsport-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services   *appServices.Services
	Repos      *appRepos.Repositories
	Catalog    *reference.Catalog
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger

	AuthController                *appControllers.AuthController
	ApplicationController         *appControllers.ApplicationController
	NationalApplicationController *appControllers.NationalApplicationController
	StudentController             *appControllers.StudentController
	PostController                *appControllers.PostController
	ReferenceController           *appControllers.ReferenceController
	AuthMiddleware                *appMiddleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	catalog, err := reference.Load(cfg.Reference.BranchesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load branch catalog: %w", err)
	}
	deps.Catalog = catalog
	lgr.Info().Int("branches", len(catalog.Branches)).Str("path", cfg.Reference.BranchesPath).Msg("Branch catalog loaded")

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(database, deps.Repos, catalog, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.AdminRepository)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.Services.ApplicationService)
	deps.NationalApplicationController = appControllers.NewNationalApplicationController(deps.Services.NationalApplicationService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.PostController = appControllers.NewPostController(deps.Services.PostService)
	deps.ReferenceController = appControllers.NewReferenceController(deps.Services.ReferenceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApplicationController,
		deps.NationalApplicationController,
		deps.StudentController,
		deps.PostController,
		deps.ReferenceController,
		deps.AuthMiddleware,
	)

	return router
}
