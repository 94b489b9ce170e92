// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/tripcrew/internal/adapters/http"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/storage/guarded"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/tripcrew/internal/adapters/storage/sqlite"

	"github.com/jsamuelsen11/tripcrew/internal/app"
	"github.com/jsamuelsen11/tripcrew/internal/app/events"
	"github.com/jsamuelsen11/tripcrew/internal/platform/config"
	"github.com/jsamuelsen11/tripcrew/internal/platform/health"
	"github.com/jsamuelsen11/tripcrew/internal/platform/logging"
	"github.com/jsamuelsen11/tripcrew/internal/platform/scheduler"
	"github.com/jsamuelsen11/tripcrew/internal/platform/telemetry"
	"github.com/jsamuelsen11/tripcrew/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers and event subscribers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*guarded.Store](injector))

	orch := do.MustInvoke[*app.Orchestrator](injector)
	do.MustInvoke[*events.Bus](injector).Subscribe(orch.HandleMembershipChanged)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

		// Fail readiness first so no new trip traffic is routed here.
		do.MustInvoke[*handlers.HealthHandler](injector).Drain()

		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}

		// Wait for Start() goroutine to return.
		<-serverErr
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	// Stop replan tick loops before the store goes away.
	orch.Close()
	do.MustInvoke[*scheduler.Ticker](injector).Stop()

	if err := do.MustInvoke[*storeBackend](injector).Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// storeBackend is the configured durable store and its release function.
type storeBackend struct {
	store ports.GroupStore
	close func() error
}

// Close releases the backend. Nil-safe.
func (b *storeBackend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

func openStore(ctx context.Context, cfg config.StorageConfig) (*storeBackend, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		st, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return &storeBackend{store: st, close: st.Close}, nil
	case config.DriverMemory:
		return &storeBackend{store: memory.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*storeBackend, error) {
		return openStore(ctx, cfg.Storage)
	})

	do.Provide(injector, func(i do.Injector) (*guarded.Store, error) {
		backend, err := do.Invoke[*storeBackend](i)
		if err != nil {
			return nil, fmt.Errorf("opening group store: %w", err)
		}
		return guarded.New(backend.store, &cfg.Storage.Breaker, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Groups, error) {
		return app.NewGroups(do.MustInvoke[*guarded.Store](i)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*events.Bus, error) {
		return events.NewBus(logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*scheduler.Ticker, error) {
		return scheduler.NewTicker(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Clock, error) {
		return scheduler.SystemClock{}, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(0), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Orchestrator, error) {
		return app.NewOrchestrator(
			do.MustInvoke[*app.Groups](i),
			do.MustInvoke[*scheduler.Ticker](i),
			do.MustInvoke[ports.Clock](i),
			app.OrchestratorConfig{
				TickInterval:    cfg.Replan.TickInterval,
				ProgressPerTick: cfg.Replan.ProgressPerTick,
			},
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.GroupHandler, error) {
		svc := app.NewGroupService(do.MustInvoke[*app.Groups](i), do.MustInvoke[ports.Clock](i), logger)
		return handlers.NewGroupHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MemberHandler, error) {
		svc := app.NewMemberService(
			do.MustInvoke[*app.Groups](i),
			do.MustInvoke[*events.Bus](i),
			do.MustInvoke[ports.Clock](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		)
		return handlers.NewMemberHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BudgetHandler, error) {
		svc := app.NewBudgetService(do.MustInvoke[*app.Groups](i), logger)
		return handlers.NewBudgetHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ReplanHandler, error) {
		return handlers.NewReplanHandler(do.MustInvoke[*app.Orchestrator](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Group:  do.MustInvoke[*handlers.GroupHandler](i),
			Member: do.MustInvoke[*handlers.MemberHandler](i),
			Budget: do.MustInvoke[*handlers.BudgetHandler](i),
			Replan: do.MustInvoke[*handlers.ReplanHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
