package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashionhub/internal/auth"
	"fashionhub/internal/config"
	"fashionhub/internal/database"
	"fashionhub/internal/diagnostics"
	"fashionhub/internal/handler"
	"fashionhub/internal/middleware"
	"fashionhub/internal/repository"
	"fashionhub/internal/router"
	"fashionhub/internal/service"
	"fashionhub/internal/storage"
	"fashionhub/internal/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger, os.Stdout)
	logger.Info().Msg("starting FashionHub API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to apply database schema: %w", err)
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize image storage; multipart uploads are refused without it
	images, err := newImageStore(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Initialize admin authentication
	passwordHash, err := cfg.Auth.PasswordHash()
	if err != nil {
		return err
	}
	admins := auth.NewAdminAuthenticator(cfg.Auth.AdminEmails, passwordHash)
	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	// Initialize services
	productService := service.NewProductService(productRepo, images, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	authService := service.NewAuthService(admins, tokens, logger)

	// Initialize tracing and metrics
	tracer := tracing.NewNoopTracer()
	if cfg.Tracing.Enabled {
		tracer, err = tracing.NewStdoutTracer(cfg.Tracing.ServiceName, os.Stdout)
		if err != nil {
			return err
		}
		logger.Info().Str("service_name", cfg.Tracing.ServiceName).Msg("tracing enabled")
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := tracer.Shutdown(flushCtx); err != nil {
			logger.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Initialize router
	mux := router.New(router.Deps{
		Products:     handler.NewProductHandler(productService, cfg.Storage.MaxUploadBytes, logger),
		Orders:       handler.NewOrderHandler(orderService, logger),
		Auth:         handler.NewAuthHandler(authService, logger),
		RequireAdmin: middleware.RequireAdmin(tokens, admins, logger),
		Tracer:       tracer,
		Metrics:      httpMetrics,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the servers
	serverErrors := make(chan error, 2)

	var diag *diagnostics.Server
	if cfg.Diagnostics.Enabled {
		diag = diagnostics.NewServer(cfg.Diagnostics.Port, registry, logger)
		go func() {
			if err := diag.Start(); err != nil {
				serverErrors <- err
			}
		}()
	}

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if diag != nil {
			if err := diag.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("failed to shutdown diagnostics server")
			}
		}

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newImageStore returns nil when storage is disabled.
func newImageStore(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (storage.ImageStore, error) {
	if !cfg.Enabled {
		logger.Info().Msg("image storage disabled, multipart product uploads will be rejected")
		return nil, nil
	}

	opts := storage.S3Options{
		Bucket:         cfg.Bucket,
		Region:         cfg.Region,
		Folder:         cfg.Folder,
		Endpoint:       cfg.Endpoint,
		PublicBaseURL:  cfg.PublicBaseURL,
		UsePathStyle:   cfg.UsePathStyle,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	client, err := storage.NewS3Client(ctx, opts)
	if err != nil {
		return nil, err
	}

	return storage.NewS3ImageStore(client, opts, logger), nil
}
