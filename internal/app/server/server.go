package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"backoffice/internal/domain/commission"
	"backoffice/internal/domain/payroll"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/logging"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	commissionhandler "backoffice/internal/transport/http/handlers/commission"
	payrollhandler "backoffice/internal/transport/http/handlers/payroll"
	timecodechandler "backoffice/internal/transport/http/handlers/timecodec"
	"backoffice/internal/transport/http/middleware"
)

var Version = "dev"

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := logging.New(os.Stdout, logging.Options{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		Version:     Version,
	})
	collector := metrics.New()
	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: collector,
		Router:  NewRouter(cfg, logger, collector),
	}, nil
}

func NewRouter(cfg config.Config, logger *slog.Logger, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Logger(logger, logging.ParseLevel(cfg.LogLevel)))
	router.Use(chimw.CleanPath)
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(chimw.Heartbeat("/healthz"))

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
		r.Use(middleware.RequireJSON)

		payrollHandler := payrollhandler.NewHandler(payroll.NewService(logger), collector)
		payrollHandler.RegisterRoutes(r)

		commissionHandler := commissionhandler.NewHandler(commission.NewService(logger), collector)
		commissionHandler.RegisterRoutes(r)

		timeHandler := timecodechandler.NewHandler(collector)
		timeHandler.RegisterRoutes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", middleware.GetRequestID(r.Context()))
	})

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests within the
// configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		a.Logger.Info("server shutting down", "timeout", a.Config.ShutdownTimeout.String())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
