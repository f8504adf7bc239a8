package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/circlesapp/server/internal/api/http"
	"github.com/circlesapp/server/internal/config"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/push"
	"github.com/circlesapp/server/internal/repository/postgres"
	"github.com/circlesapp/server/internal/security"
	"github.com/circlesapp/server/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Circles server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Push Sender
	var sender push.Sender = push.NopSender{}
	if cfg.Push.CredentialsFile != "" {
		fcm, err := push.NewFCMSender(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize FCM, push disabled", "error", err)
		} else {
			sender = fcm
			logger.Info("FCM push sender initialized")
		}
	} else {
		logger.Info("Push credentials not configured, push disabled")
	}

	// Initialize Email Service
	var emailSvc service.EmailService = service.NopEmailService{}
	if cfg.SMTP.Host != "" {
		emailSvc = service.NewEmailService(cfg.SMTP)
	} else {
		logger.Info("SMTP not configured, email disabled")
	}

	// Initialize Services
	notifier := service.NewNotifier(store.AlarmRepository, sender)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	userSvc := service.NewUserService(store.UserRepository, store.AlarmRepository)
	clubSvc := service.NewClubService(
		store.ClubRepository,
		store.UserRepository,
		store.ApplicantRepository,
		store.PostRepository,
		store.AwardRepository,
		store.BudgetRepository,
		store.CalendarRepository,
		notifier,
	)
	applicantSvc := service.NewApplicantService(
		store.ApplicantRepository,
		store.ClubRepository,
		store.UserRepository,
		notifier,
		emailSvc,
	)
	postSvc := service.NewPostService(store.PostRepository)
	awardSvc := service.NewAwardService(store.AwardRepository)
	budgetSvc := service.NewBudgetService(store.BudgetRepository)
	calendarSvc := service.NewCalendarService(store.CalendarRepository)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:       authSvc,
		Users:      userSvc,
		Clubs:      clubSvc,
		Applicants: applicantSvc,
		Posts:      postSvc,
		Awards:     awardSvc,
		Budgets:    budgetSvc,
		Calendar:   calendarSvc,
	}, tokenManager, store.UserRepository)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
