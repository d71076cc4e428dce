package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notifier/config"
	"notifier/internal/adapters/email"
	"notifier/internal/adapters/locale"
	deliveryhttp "notifier/internal/delivery/http"
	"notifier/internal/delivery/http/controllers"
	"notifier/internal/delivery/http/middleware"
	"notifier/internal/services"
)

// @title Notifications Microservice
// @version 1.0
// @description Renders localized HTML emails from named templates and dispatches them through the email provider.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	logger.Info("starting notifications microservice", "env", cfg.Environment, "port", cfg.Port)

	// Locale catalog is loaded once before any request is served.
	store := locale.NewStore(cfg.LocalesFolder, logger)
	if err := store.Load(); err != nil {
		logger.Error("failed to load locale catalog", "err", err)
		os.Exit(1)
	}

	renderer := email.NewTemplateRenderer(os.DirFS(cfg.TemplateFolder), cfg.BaseSiteURL, cfg.ProjectName, logger)
	mailer := email.NewMailer(email.MailerConfig{
		Provider: cfg.EmailProvider,
		APIKey:   cfg.ResendAPIKey,
	}, logger)

	svc := services.NewNotificationService(store, renderer, mailer, cfg.FromEmailName, cfg.FromEmail, logger)
	ctrl := controllers.NewNotificationController(logger, svc)

	strategy := middleware.BearerAuth()
	if cfg.AuthScheme == config.AuthSchemeAPIKey {
		strategy = middleware.HeaderAuth()
	}
	requireAuth := middleware.RequireAPIKey(strategy, cfg.APIKey, logger)

	mux := deliveryhttp.NewRouter(ctrl, requireAuth)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logging(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// No persisted state to flush on shutdown; just drain in-flight requests.
	logger.Info("shutting down notifications microservice")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
