package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/sentiment-service/apierrors"
	"github.com/blogem/sentiment-service/config"
	"github.com/blogem/sentiment-service/controllers"
	"github.com/blogem/sentiment-service/generator"
	"github.com/blogem/sentiment-service/hostmetrics"
	"github.com/blogem/sentiment-service/logger"
	"github.com/blogem/sentiment-service/middleware"
	"github.com/blogem/sentiment-service/repositories"
	"github.com/blogem/sentiment-service/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables from .env file when present
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load the env vars: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogJSON)
	slog.SetDefault(log)

	// Initialize text-generation provider
	provider, err := generator.NewOpenAIProvider(generator.Config{APIKey: cfg.OpenAIAPIKey})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenAI provider: %w", err)
	}

	// Initialize repositories
	repos := repositories.NewRepositories()

	// Initialize services
	srvs := services.NewServices(repos, provider, hostmetrics.NewSampler(), log)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, log)

	r := setupRouter(ctrl, logger.WithComponent(log, "http"))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("server starting",
		"addr", server.Addr,
		"model", generator.ModelGPT4oMini,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, server, cfg.ShutdownTimeout, log)
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight requests
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))

	// Unknown paths and unsupported methods both answer 404
	r.NotFound(apierrors.NotFoundHandler)
	r.MethodNotAllowed(apierrors.NotFoundHandler)

	r.Post("/analyze", ctrl.Analyze.Analyze)
	r.Get("/logs", ctrl.Logs.Index)
	r.Get("/status", ctrl.Status.Index)

	return r
}
