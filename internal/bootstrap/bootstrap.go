package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/aaryan/councilhub/internal/app/controllers"
	appMigrations "github.com/aaryan/councilhub/internal/app/migrations"
	appRepos "github.com/aaryan/councilhub/internal/app/repositories"
	appRoutes "github.com/aaryan/councilhub/internal/app/routes"
	appServices "github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/config"
	"github.com/aaryan/councilhub/internal/db"
	appMiddleware "github.com/aaryan/councilhub/internal/middleware"
	pkgAuth "github.com/aaryan/councilhub/internal/pkg/auth"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/helpers"
	"github.com/aaryan/councilhub/internal/pkg/logger"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
	"github.com/aaryan/councilhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services                *appServices.ServiceContainer
	AuthController          *appControllers.AuthController
	ProfileController       *appControllers.ProfileController
	TeamController          *appControllers.TeamController
	EventController         *appControllers.EventController
	GalleryController       *appControllers.GalleryController
	ProjectController       *appControllers.ProjectController
	AchievementController   *appControllers.AchievementController
	AnnouncementController  *appControllers.AnnouncementController
	CollaborationController *appControllers.CollaborationController
	ResourceController      *appControllers.ResourceController
	RegistrationController  *appControllers.RegistrationController
	UploadController        *appControllers.UploadController
	AuthMiddleware          *appMiddleware.AuthMiddleware
	Repos                   *appRepos.Repositories
	JWTService              *pkgAuth.JWTService
	Cache                   *querycache.Cache
	Blobs                   blobstore.Store
	Logger                  zerolog.Logger

	// ready gates cached reads; the server flips it once startup completes.
	ready atomic.Bool
}

// MarkReady opens the read cache for business. Reads attempted earlier fail
// fast with a not-ready error instead of hitting a half-initialized backend.
func (d *Dependencies) MarkReady() {
	d.ready.Store(true)
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
// seeds default data.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// setupBlobStore selects and initializes the configured blob backend.
func setupBlobStore(cfg *config.Config, lgr zerolog.Logger) (blobstore.Store, error) {
	switch cfg.Storage.Driver {
	case "minio":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := blobstore.NewMinioStore(ctx, blobstore.MinioConfig{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
			UseSSL:    cfg.Storage.Minio.UseSSL,
			PublicURL: cfg.Storage.Minio.PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		lgr.Info().Str("endpoint", cfg.Storage.Minio.Endpoint).Str("bucket", cfg.Storage.Minio.Bucket).Msg("Blob storage configured (minio)")
		return store, nil
	default:
		baseURL := strings.TrimRight(cfg.Server.PublicURL, "/") + "/uploads"
		store, err := blobstore.NewLocalStore(cfg.Storage.LocalPath, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Blob storage configured (local)")
		return store, nil
	}
}

// BuildDependencies initializes repositories, the read cache, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.Blobs, err = setupBlobStore(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps.Cache = querycache.New(deps.ready.Load)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServiceContainer(deps.Repos, deps.Cache, deps.Blobs, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.ProfileService)
	deps.TeamController = appControllers.NewTeamController(deps.Services.TeamService, deps.Blobs)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService, deps.Blobs)
	deps.GalleryController = appControllers.NewGalleryController(deps.Services.GalleryService, deps.Blobs)
	deps.ProjectController = appControllers.NewProjectController(deps.Services.ProjectService, deps.Services.AuthService)
	deps.AchievementController = appControllers.NewAchievementController(deps.Services.AchievementService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.Services.AnnouncementService)
	deps.CollaborationController = appControllers.NewCollaborationController(deps.Services.CollaborationService)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.ResourceService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.Services.RegistrationService)
	deps.UploadController = appControllers.NewUploadController(deps.Blobs)

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

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.TeamController,
		deps.EventController,
		deps.GalleryController,
		deps.ProjectController,
		deps.AchievementController,
		deps.AnnouncementController,
		deps.CollaborationController,
		deps.ResourceController,
		deps.RegistrationController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
