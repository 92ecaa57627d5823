package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushq/attendance-backend/internal/app/controllers"
	appMigrations "github.com/campushq/attendance-backend/internal/app/migrations"
	appRepos "github.com/campushq/attendance-backend/internal/app/repositories"
	appRoutes "github.com/campushq/attendance-backend/internal/app/routes"
	appServices "github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/config"
	"github.com/campushq/attendance-backend/internal/db"
	appMiddleware "github.com/campushq/attendance-backend/internal/middleware"
	pkgAuth "github.com/campushq/attendance-backend/internal/pkg/auth"
	"github.com/campushq/attendance-backend/internal/pkg/helpers"
	"github.com/campushq/attendance-backend/internal/pkg/logger"
	"github.com/campushq/attendance-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService *pkgAuth.JWTService

	AuthService       *appServices.AuthService
	IdentityService   *appServices.IdentityService
	LecturerService   *appServices.LecturerService
	StudentService    *appServices.StudentService
	SemesterService   *appServices.SemesterService
	CourseService     *appServices.CourseService
	SectionService    *appServices.SectionService
	CollegeDayService *appServices.CollegeDayService

	AuthController       *appControllers.AuthController
	IdentityController   *appControllers.IdentityController
	LecturerController   *appControllers.LecturerController
	StudentController    *appControllers.StudentController
	SemesterController   *appControllers.SemesterController
	CourseController     *appControllers.CourseController
	SectionController    *appControllers.SectionController
	CollegeDayController *appControllers.CollegeDayController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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
// seeds the bootstrap admin (plus demo data when enabled).
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.EnsureAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin identity")
		dbPool.Close()
		return nil, err
	}

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			// Demo data is a convenience; a failure should not stop startup.
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.IdentityRepository,
		deps.Repos.LecturerRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RefreshTokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.IdentityService = appServices.NewIdentityService(
		deps.Repos.IdentityRepository,
		deps.Repos.RefreshTokenRepository,
		lgr,
	)
	deps.LecturerService = appServices.NewLecturerService(
		deps.Repos.LecturerRepository,
		deps.Repos.IdentityRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.IdentityRepository,
		lgr,
	)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.SemesterRepository,
		lgr,
	)
	deps.SectionService = appServices.NewSectionService(
		deps.Repos.SectionRepository,
		deps.Repos.CourseRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.LecturerRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.CollegeDayService = appServices.NewCollegeDayService(
		deps.Repos.CollegeDayRepository,
		deps.Repos.SectionRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.IdentityController = appControllers.NewIdentityController(deps.IdentityService)
	deps.LecturerController = appControllers.NewLecturerController(deps.LecturerService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SectionController = appControllers.NewSectionController(deps.SectionService)
	deps.CollegeDayController = appControllers.NewCollegeDayController(deps.CollegeDayService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.IdentityController,
		deps.LecturerController,
		deps.StudentController,
		deps.SemesterController,
		deps.CourseController,
		deps.SectionController,
		deps.CollegeDayController,
		deps.AuthMiddleware,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
