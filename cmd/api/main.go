package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/velvetrope/events-site/internal/catalog"
	"github.com/velvetrope/events-site/internal/http/handlers"
	httpmw "github.com/velvetrope/events-site/internal/http/middleware"
	"github.com/velvetrope/events-site/internal/repo/postgres"
	"github.com/velvetrope/events-site/internal/service"
	"github.com/velvetrope/events-site/pkg/config"
	"github.com/velvetrope/events-site/pkg/database"
	"github.com/velvetrope/events-site/pkg/events"
	"github.com/velvetrope/events-site/pkg/logger"
	mw "github.com/velvetrope/events-site/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Without a signing secret every login would fail with a 500, so
	// refuse to start at all.
	if cfg.Auth.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	eventCatalog, err := catalog.Load(cfg.Events.CatalogPath)
	if err != nil {
		logger.Error("Failed to load event catalog", "error", err, "path", cfg.Events.CatalogPath)
		os.Exit(1)
	}
	logger.Info("Event catalog loaded", "events", eventCatalog.Len())

	var eventBus events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		eventBus = bus
	}

	// Initialize repositories and services
	rsvpRepo := postgres.NewRSVPRepo(pool)
	accessService := service.NewAccessService(eventCatalog, eventBus, cfg)
	rsvpService := service.NewRSVPService(rsvpRepo, eventBus)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accessService)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)

	loginLimiter := httpmw.NewRateLimiter(pool, httpmw.RateLimitConfig{
		Requests: 5,
		Window:   15 * time.Minute,
	})

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware()).Post("/login", authHandler.Login)
			r.Post("/verify", authHandler.Verify)
		})

		// RSVP submission and listing are public by design: the
		// password gates the page, not the RSVP API.
		r.Route("/rsvp", func(r chi.Router) {
			r.Post("/", rsvpHandler.Submit)
			r.Get("/{eventID}", rsvpHandler.List)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down events API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting events API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
