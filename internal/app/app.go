package app

import (
	"fmt"

	"fairway_backend/database"
	"fairway_backend/internal/config"
	"fairway_backend/internal/email"
	"fairway_backend/internal/handlers"
	"fairway_backend/internal/logger"
	"fairway_backend/internal/middleware"
	"fairway_backend/internal/repositories"
	"fairway_backend/internal/routes"
	"fairway_backend/internal/services"
	"fairway_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects to Postgres, migrates the schema
// and serves HTTP until the process is killed.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the fully wired gin engine. Integration tests
// call it directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.JWT.Secret)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &email.NoopProvider{}
		logger.Warn("No SMTP host configured, emails will be dropped")
	}

	userRepo := repositories.NewUserRepository()
	courseRepo := repositories.NewCourseRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, emailProvider, cfg),
		UserService:   services.NewUserService(userRepo, reviewRepo),
		CourseService: services.NewCourseService(courseRepo, reviewRepo),
		ReviewService: services.NewReviewService(reviewRepo, courseRepo),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
