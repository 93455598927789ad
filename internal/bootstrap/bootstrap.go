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

	appControllers "github.com/omondi/shulehub/internal/app/controllers"
	appMigrations "github.com/omondi/shulehub/internal/app/migrations"
	appRepos "github.com/omondi/shulehub/internal/app/repositories"
	appRoutes "github.com/omondi/shulehub/internal/app/routes"
	appServices "github.com/omondi/shulehub/internal/app/services"
	"github.com/omondi/shulehub/internal/config"
	"github.com/omondi/shulehub/internal/db"
	appMiddleware "github.com/omondi/shulehub/internal/middleware"
	pkgAuth "github.com/omondi/shulehub/internal/pkg/auth"
	"github.com/omondi/shulehub/internal/pkg/email"
	"github.com/omondi/shulehub/internal/pkg/filestorage"
	"github.com/omondi/shulehub/internal/pkg/helpers"
	"github.com/omondi/shulehub/internal/pkg/logger"
	"github.com/omondi/shulehub/internal/pkg/validation"
	"github.com/omondi/shulehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	AdminController      *appControllers.AdminController
	StudentController    *appControllers.StudentController
	CampaignController   *appControllers.CampaignController
	ResourceController   *appControllers.ResourceController
	CouncilController    *appControllers.CouncilController
	SubscriberController *appControllers.SubscriberController
	NewsController       *appControllers.NewsController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Mailer               email.Mailer
	Logger               zerolog.Logger
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Mailer, err = email.NewMailer(email.Config{
		Backend:     cfg.Mail.Backend,
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		Password:    cfg.Mail.Password,
		UseTLS:      cfg.Mail.UseTLS,
		SendGridKey: cfg.Mail.SendGridKey,
		FromName:    cfg.Mail.FromName,
		FromEmail:   cfg.Mail.FromEmail,
	}, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize mailer")
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, deps.Mailer)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.AdminRepository)

	deps.AdminController = appControllers.NewAdminController(deps.Services.Admin)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student)
	deps.CampaignController = appControllers.NewCampaignController(deps.Services.Campaign)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.Resource)
	deps.CouncilController = appControllers.NewCouncilController(deps.Services.Council)
	deps.SubscriberController = appControllers.NewSubscriberController(deps.Services.Subscriber)
	deps.NewsController = appControllers.NewNewsController(deps.Services.News)

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

	if err := validation.RegisterBindings(); err != nil {
		lgr.Warn().Err(err).Msg("Failed to register custom binding validators")
	}

	appRoutes.SetupRouter(router,
		deps.AdminController,
		deps.StudentController,
		deps.CampaignController,
		deps.ResourceController,
		deps.CouncilController,
		deps.SubscriberController,
		deps.NewsController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
