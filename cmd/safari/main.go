// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/savannatrails/safari-go/internal/analytics"
	"github.com/savannatrails/safari-go/internal/cache"
	"github.com/savannatrails/safari-go/internal/config"
	"github.com/savannatrails/safari-go/internal/draft"
	"github.com/savannatrails/safari-go/internal/geoip"
	"github.com/savannatrails/safari-go/internal/handler"
	"github.com/savannatrails/safari-go/internal/logging"
	"github.com/savannatrails/safari-go/internal/media"
	"github.com/savannatrails/safari-go/internal/middleware"
	"github.com/savannatrails/safari-go/internal/model"
	"github.com/savannatrails/safari-go/internal/render"
	"github.com/savannatrails/safari-go/internal/scheduler"
	"github.com/savannatrails/safari-go/internal/service"
	"github.com/savannatrails/safari-go/internal/session"
	"github.com/savannatrails/safari-go/internal/store"
	"github.com/savannatrails/safari-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Savanna Trails - Safari Tour Operator Site\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_SESSION_SECRET  Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_DB_PATH         SQLite database path (default: ./data/safari.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_UPLOADS_DIR     Uploaded image directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_REDIS_URL       Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_GEOIP_DB_PATH   GeoLite2 country database path (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SAFARI_DO_SEED         Seed demo catalog content (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("safari %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	// Ensure data and uploads directories exist
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the events table
	slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, db)))
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if err := store.SeedDemo(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding demo content: %w", err)
	}

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize cache backend (Redis when configured, memory otherwise)
	cacheBackend, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	if cfg.UseRedisCache() {
		slog.Info("cache initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache initialized", "backend", "memory")
	}

	// GeoIP lookup for visitor analytics; disabled when no database is configured
	geo, err := geoip.NewLookup(cfg.GeoIPDBPath)
	if err != nil {
		slog.Warn("geoip database unavailable, country tracking disabled", "error", err)
	}
	defer func() {
		if err := geo.Close(); err != nil {
			slog.Error("error closing geoip database", "error", err)
		}
	}()

	// Domain services
	queries := store.New(db)
	mediaService := media.NewService(cfg.UploadsDir)
	draftStore := draft.NewStore(cacheBackend)
	catalogService := service.NewCatalogService(queries, cacheBackend, time.Duration(cfg.CacheTTL)*time.Second)
	tracker := analytics.NewTracker(queries, geo)

	// Start the maintenance scheduler (data retention pruning, geoip reload)
	sched := scheduler.New(db, geo, slog.Default())
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Initialize template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Create router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	slog.Info("login protection initialized",
		"max_failed_attempts", 5,
		"lockout_duration", "15m",
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer)
	packageHandler := handler.NewPackageHandler(db, renderer, sessionManager, draftStore, mediaService, catalogService, model.KindPackage)
	ideaHandler := handler.NewPackageHandler(db, renderer, sessionManager, draftStore, mediaService, catalogService, model.KindTravelIdea)
	articleHandler := handler.NewArticleHandler(db, renderer)
	bookingHandler := handler.NewBookingHandler(db, renderer)
	contactHandler := handler.NewContactHandler(db, renderer)
	newsletterHandler := handler.NewNewsletterHandler(db, renderer)
	analyticsHandler := handler.NewAnalyticsHandler(db, renderer)
	eventHandler := handler.NewEventHandler(db, renderer)
	frontendHandler := handler.NewFrontendHandler(db, renderer, catalogService, cfg.SiteURL, cfg.IsDevelopment())
	healthHandler := handler.NewHealthHandler(db)

	// Health check and crawler routes (public, no tracking)
	r.Get("/healthz", healthHandler.Health)
	r.Get("/sitemap.xml", frontendHandler.Sitemap)
	r.Get("/robots.txt", frontendHandler.Robots)

	// Public frontend routes (with visitor analytics tracking and CSRF on forms)
	r.Group(func(r chi.Router) {
		r.Use(tracker.Middleware)
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get(handler.RouteTours, frontendHandler.Tours)
		r.Get(handler.RouteTours+handler.RouteParamSlug, frontendHandler.TourDetail)
		r.Get(handler.RouteTravelIdeas, frontendHandler.TravelIdeas)
		r.Get(handler.RouteTravelIdeas+handler.RouteParamSlug, frontendHandler.TravelIdeaDetail)
		r.Get(handler.RouteDestinations, frontendHandler.Destinations)
		r.Get(handler.RouteDestinations+handler.RouteParamSlug, frontendHandler.DestinationDetail)
		r.Get(handler.RouteWildTales, frontendHandler.WildTales)
		r.Get(handler.RouteWildTales+handler.RouteParamSlug, frontendHandler.WildTaleDetail)
		r.Get(handler.RouteContact, frontendHandler.ContactForm)
		r.Post(handler.RouteContact, frontendHandler.ContactSubmit)
		r.Get(handler.RouteBooking, frontendHandler.BookingForm)
		r.Post(handler.RouteBooking, frontendHandler.BookingSubmit)
		r.Post(handler.RouteNewsletter, newsletterHandler.Subscribe)
		r.Get(handler.RouteNewsletter+"/unsubscribe", newsletterHandler.Unsubscribe)
	})

	// Auth routes (public, CSRF plus login rate limiting)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginProtection.Middleware).Post(handler.RouteLogin, authHandler.Login)
		r.Post(handler.RouteLogout, authHandler.Logout)
	})

	// Admin routes (protected)
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, db))

		r.Get(handler.RouteRoot, adminHandler.Dashboard)
		r.Route(handler.RoutePackages, packageHandler.Routes)
		r.Route(handler.RouteIdeas, ideaHandler.Routes)
		r.Route(handler.RouteArticles, articleHandler.Routes)
		r.Route(handler.RouteBookings, bookingHandler.Routes)
		r.Route(handler.RouteContacts, contactHandler.Routes)
		r.Get(handler.RouteSubscribers, newsletterHandler.List)
		r.Get(handler.RouteAnalytics, analyticsHandler.Overview)
		r.Get(handler.RouteEvents, eventHandler.List)
	})

	// Static assets from the embedded filesystem
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Uploaded images from the uploads directory
	r.Handle(media.PublicPrefix+"/*", http.StripPrefix(media.PublicPrefix+"/", http.FileServer(http.Dir(cfg.UploadsDir))))

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // allow for image uploads on slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
