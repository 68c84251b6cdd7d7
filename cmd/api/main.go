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

	"admin_console/internal/adapters"
	"admin_console/internal/console"
	"admin_console/internal/console/client"
	"admin_console/internal/console/service"
	"admin_console/internal/diagnostics"
	"admin_console/internal/events"
	"admin_console/internal/fixtures"
	apphttp "admin_console/internal/http"
	"admin_console/internal/http/router"
	"admin_console/internal/properties"
	propertyrepo "admin_console/internal/properties/repository"
	"admin_console/internal/users"
	userrepo "admin_console/internal/users/repository"
	"admin_console/internal/web"
	"admin_console/platform/config"
	"admin_console/platform/latency"
	"admin_console/platform/logger"
	"admin_console/platform/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	catalog, err := fixtures.Load(cfg.GetFixturesPath())
	if err != nil {
		log.Error("failed to load fixtures", "error", err, "path", cfg.GetFixturesPath())
		panic("failed to load fixtures: " + err.Error())
	}

	// Event bus carrying console diagnostics
	eventBus := events.NewInMemoryBus(log)

	var closeDiagnostics func() error
	if err := withRetry(ctx, log, "diagnostics sinks", 5, 2*time.Second, func() error {
		closeFn, err := diagnostics.Register(ctx, eventBus, cfg, log)
		if err != nil {
			return err
		}
		closeDiagnostics = closeFn
		return nil
	}); err != nil {
		log.Error("failed to initialize diagnostics", "error", err)
		panic("failed to initialize diagnostics: " + err.Error())
	}
	defer func() {
		if err := closeDiagnostics(); err != nil {
			log.Warn("failed to close diagnostics sink", "error", err)
		}
	}()

	// Shared validator instance for dependency injection
	val := validator.New()
	delay := latency.New(cfg.GetMockLatencyScale())

	// ========================================================================
	// Domain Modules
	// ========================================================================

	usersModule := users.NewModule(userrepo.New(catalog), delay, log)
	propertiesModule := properties.NewModule(propertyrepo.New(catalog), delay)

	// The console reads the directory in-process unless an upstream is configured.
	var source service.DataSource = adapters.NewDirectoryAdapter(usersModule.Service(), propertiesModule.Service())
	var health apphttp.HealthChecker
	if cfg.GetConsoleUpstreamURL() != "" {
		upstream := client.New(cfg.GetConsoleUpstreamURL(), cfg.GetConsoleSectionTimeout(), log)
		source = upstream
		health = upstream
		log.Info("console reading upstream directory", "url", upstream.BaseURL())
	}

	consoleModule := console.NewModule(source, val, eventBus, cfg, log)

	webModule, err := web.NewModule()
	if err != nil {
		log.Error("failed to initialize web module", "error", err)
		panic("failed to initialize web module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			usersModule,
			propertiesModule,
			consoleModule,
			webModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		if err := eventBus.Drain(shutdownCtx); err != nil {
			log.Warn("diagnostics events still in flight at shutdown", "error", err)
		}
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", lastErr)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
