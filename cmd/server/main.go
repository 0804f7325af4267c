package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/infrastructure/config"
	"github.com/instrategy/salesflow/internal/infrastructure/gemini"
	"github.com/instrategy/salesflow/internal/infrastructure/hubspot"
	"github.com/instrategy/salesflow/internal/infrastructure/logger"
	"github.com/instrategy/salesflow/internal/infrastructure/mail"
	"github.com/instrategy/salesflow/internal/infrastructure/persistence"
	"github.com/instrategy/salesflow/internal/interfaces/http/handler"
	"github.com/instrategy/salesflow/internal/interfaces/http/middleware"
	"github.com/instrategy/salesflow/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SalesFlow backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Database handle with a zap-backed gorm logger. Connectivity is
	// checked per request, not at startup: only a malformed DSN is fatal
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Invalid database configuration", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Ping(); err != nil {
		log.Warn("Database unreachable, requests will fail until it recovers", zap.Error(err))
	} else {
		log.Info("Database connected successfully")
	}

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	callRepo := persistence.NewGormCallRepository(db.DB)
	emailRepo := persistence.NewGormEmailLogRepository(db.DB)
	syncLogRepo := persistence.NewGormSyncLogRepository(db.DB)

	// HubSpot client (token is validated at config load)
	hubspotClient, err := hubspot.NewClient(hubspot.Config{
		Token:   cfg.HubSpot.Token,
		BaseURL: cfg.HubSpot.BaseURL,
	})
	if err != nil {
		log.Fatal("Failed to initialize HubSpot client", zap.Error(err))
	}

	// Gemini is optional: without a key the parse endpoints degrade
	var llm appcrm.TextGenerator
	if cfg.Gemini.Enabled() {
		geminiClient, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			log.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
		llm = geminiClient
		log.Info("Text extraction enabled", zap.String("model", cfg.Gemini.Model))
	} else {
		log.Warn("No Gemini API key configured, parse endpoints will degrade")
	}

	sender := mail.NewGomailSender(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	if !sender.Configured() {
		log.Warn("SMTP credentials not configured, email delivery is disabled")
	}

	// Application services
	companyService := appcrm.NewCompanyService(companyRepo)
	contactService := appcrm.NewContactService(contactRepo)
	callService := appcrm.NewCallService(callRepo)
	emailLogService := appcrm.NewEmailLogService(emailRepo)
	syncService := appcrm.NewSyncService(hubspotClient, syncLogRepo, log)
	extractionService := appcrm.NewExtractionService(llm, companyRepo, log)
	mailService := appcrm.NewMailService(sender, emailRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id, panic recovery, request logging,
	// security headers, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	// Route table
	router.Setup(engine, router.Handlers{
		System:  handler.NewSystemHandler(db),
		Company: handler.NewCompanyHandler(companyService),
		Contact: handler.NewContactHandler(contactService),
		Call:    handler.NewCallHandler(callService),
		Email:   handler.NewEmailHandler(emailLogService, mailService),
		Sync:    handler.NewSyncHandler(syncService),
		Parse:   handler.NewParseHandler(extractionService),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownTimeout := cfg.HTTP.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
