package app

import (
	"errors"
	"fmt"
	"time"

	"crewboard_backend/database"
	"crewboard_backend/internal/config"
	"crewboard_backend/internal/email"
	"crewboard_backend/internal/handlers"
	"crewboard_backend/internal/logger"
	"crewboard_backend/internal/metrics"
	"crewboard_backend/internal/middleware"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/repositories"
	"crewboard_backend/internal/routes"
	"crewboard_backend/internal/services"
	"crewboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	metrics.Register()

	go purgeExpiredMagicLinks(gormDB)

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	emailSender := newEmailSender(cfg)

	profileRepo := repositories.NewProfileRepository()
	orgRepo := repositories.NewOrganizationRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	pitchRepo := repositories.NewPitchRepository()
	magicLinkRepo := repositories.NewMagicLinkRepository()

	authService := services.NewAuthService(profileRepo, orgRepo, magicLinkRepo, emailSender)
	profileService := services.NewProfileService(profileRepo, pitchRepo)
	orgService := services.NewOrganizationService(orgRepo, profileRepo)
	jobService := services.NewJobService(jobRepo, orgRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, orgRepo, profileRepo, emailSender)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProfileService:      profileService,
		OrganizationService: orgService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		EmailSender:         emailSender,
	}
}

// newEmailSender falls back to the log-only sender when SMTP is not
// configured, so local development never needs a mail server.
func newEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPHost == "localhost" {
		logger.Warn("SMTP not configured, using log-only email sender")
		return &email.LogSender{}
	}

	sender, err := email.NewGomailSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Failed to initialize SMTP sender, using log-only sender", "error", err)
		return &email.LogSender{}
	}
	return sender
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.ProfileService),
		OrganizationHandler: handlers.NewOrganizationHandler(baseHandler, container.OrganizationService),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// purgeExpiredMagicLinks deletes dead sign-in tokens hourly. Expired tokens
// are already rejected at verification; this only keeps the table small.
func purgeExpiredMagicLinks(db *gorm.DB) {
	magicLinkRepo := repositories.NewMagicLinkRepository()
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := magicLinkRepo.DeleteExpired(db); err != nil {
			logger.WithError(err).Warn("failed to purge expired magic links")
		}
	}
}

// seedFirstAdmin creates the initial admin profile from env configuration so
// a fresh deployment has someone able to moderate jobs.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var existing models.Profile
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin profile already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin profile: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	hash := string(hashedPassword)
	admin := &models.Profile{
		Kind:         models.ProfileKindPerson,
		Email:        adminEmail,
		PasswordHash: &hash,
		DisplayName:  "Administrator",
		IsAdmin:      true,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	logger.Info("Created first admin profile", "email", adminEmail)
	return nil
}
