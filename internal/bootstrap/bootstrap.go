package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sparta/academy/docs" // Import generated swagger docs
	appControllers "github.com/sparta/academy/internal/app/controllers"
	appMappers "github.com/sparta/academy/internal/app/mappers"
	appMigrations "github.com/sparta/academy/internal/app/migrations"
	appRepos "github.com/sparta/academy/internal/app/repositories"
	appRoutes "github.com/sparta/academy/internal/app/routes"
	appServices "github.com/sparta/academy/internal/app/services"
	"github.com/sparta/academy/internal/config"
	"github.com/sparta/academy/internal/db"
	appMiddleware "github.com/sparta/academy/internal/middleware"
	"github.com/sparta/academy/internal/pkg/logger"
	"github.com/sparta/academy/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	TrainerService    appServices.TrainerService
	CourseService     appServices.CourseService
	TrainerController *appControllers.TrainerController
	CourseController  *appControllers.CourseController
	Repos             *appRepos.Repositories
	TrainerMapper     *appMappers.TrainerMapper
	CourseMapper      *appMappers.CourseMapper
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; real environments set variables directly
	_ = godotenv.Load()

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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Server.SeedData {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Sample data is a convenience; startup continues without it
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, mappers, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.TrainerMapper = appMappers.NewTrainerMapper()
	deps.CourseMapper = appMappers.NewCourseMapper()

	deps.TrainerService = appServices.NewTrainerService(deps.Repos.TrainerRepository, deps.TrainerMapper)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.TrainerRepository, deps.CourseMapper)

	deps.TrainerController = appControllers.NewTrainerController(deps.TrainerService, deps.TrainerMapper)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.CourseMapper)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(cors.Default())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.TrainerController,
		deps.CourseController,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
