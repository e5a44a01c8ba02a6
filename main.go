package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"peacelock/config"
	"peacelock/database"
	bookingRepo "peacelock/database/repository/booking"
	"peacelock/handlers"
	"peacelock/middleware"
	"peacelock/routes"
	"peacelock/services/booking"
	"peacelock/services/notification"
	"peacelock/services/verify"
	"peacelock/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	// Storage. The in-memory store is the default; a configured
	// DATABASE_URL swaps in the durable implementation.
	var repo bookingRepo.BookingRepository
	if cfg.DatabaseURL != "" {
		client, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(ctx)
		}()
		repo = bookingRepo.NewMongoBookingRepo(client, cfg.DatabaseName)
		logger.Info("Using MongoDB booking store", zap.String("database", cfg.DatabaseName))
	} else {
		repo = bookingRepo.NewMemoryBookingRepo()
		logger.Info("Using in-memory booking store")
	}

	// Mailer. Production requires a SendGrid key; development without
	// one runs the no-op mailer.
	var mailer notification.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = notification.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	} else if cfg.IsProduction() {
		logger.Fatal("SENDGRID_API_KEY must be set in production")
	} else {
		logger.Warn("SendGrid API key not configured, emails will not be sent")
		mailer = notification.NewNoopMailer(logger)
	}

	dispatcher := notification.NewDispatcher(mailer, cfg.TeamEmail, logger)
	verifier := verify.NewRecaptchaVerifier(cfg.RecaptchaSecret, logger)

	bookingService := &booking.DefaultBookingService{
		Repo:       repo,
		Verifier:   verifier,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, bookingHandler)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	// Let in-flight email dispatches reach a terminal state.
	dispatcher.Wait()

	logger.Sugar().Info("main: server stopped gracefully")
}
