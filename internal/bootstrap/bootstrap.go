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

	appControllers "github.com/yigit/devacademy/internal/app/controllers"
	appMigrations "github.com/yigit/devacademy/internal/app/migrations"
	appRepos "github.com/yigit/devacademy/internal/app/repositories"
	appRoutes "github.com/yigit/devacademy/internal/app/routes"
	appServices "github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/config"
	"github.com/yigit/devacademy/internal/db"
	appMiddleware "github.com/yigit/devacademy/internal/middleware"
	pkgAuth "github.com/yigit/devacademy/internal/pkg/auth"
	"github.com/yigit/devacademy/internal/pkg/filestorage"
	"github.com/yigit/devacademy/internal/pkg/logger"
	"github.com/yigit/devacademy/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	StudentService       appServices.StudentService
	LanguageService      appServices.LanguageService
	CourseService        appServices.CourseService
	EnrollmentService    appServices.EnrollmentService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	LanguageController   *appControllers.LanguageController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Metrics              *appMiddleware.Metrics
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("mode", cfg.Server.Mode).Msg("Logger configured")

	for _, warning := range cfg.Warnings() {
		lgr.Warn().Msg(warning)
	}
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds defaults.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsPath
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedDefaults {
		if err := seed.CreateDefaultData(ctx, appRepos.NewLanguageRepository(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database db.DBTX, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.MaxUploadSize)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, deps.JWTService, deps.FileStorage, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.FileStorage, lgr)
	deps.LanguageService = appServices.NewLanguageService(deps.Repos.LanguageRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Metrics = appMiddleware.NewMetrics()

	cookies := pkgAuth.CookiePolicy{Production: cfg.IsProduction(), TTL: cfg.AccessTokenTTL()}
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cookies, cfg.Server.PublicBaseURL, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, cfg.Server.PublicBaseURL, lgr)
	deps.LanguageController = appControllers.NewLanguageController(deps.LanguageService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, health appRoutes.Pinger, lgr zerolog.Logger) *gin.Engine {
	switch cfg.Server.Mode {
	case config.ModeProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.ModeTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("ginMode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr), deps.Metrics.Middleware())
	router.MaxMultipartMemory = cfg.Server.MaxUploadSize

	appRoutes.SetupSwagger(router)
	appRoutes.SetupOps(router, health, deps.Metrics, deps.FileStorage.BasePath())
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.LanguageController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AuthMiddleware,
	)

	return router
}
