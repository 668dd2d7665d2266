package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"subprofile/internal/common"
	"subprofile/internal/config"
	"subprofile/internal/domain"
	"subprofile/internal/ingest"
	"subprofile/internal/metrics"
	"subprofile/internal/store"
)

// Application wires the profile store and the ingest pool. Decoders submit
// profiles through it and renderers read store snapshots.
type Application struct {
	app    *fx.App
	logger *zap.Logger
	store  *store.Store
	pool   *ingest.Pool
}

func NewApplication(opts ...common.Option) *Application {
	options := &common.ServiceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Ensure required options are set
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Registerer == nil {
		options.Registerer = prometheus.DefaultRegisterer
	}

	app := &Application{
		logger: options.Logger,
	}

	configOption := config.Module
	if options.Config != nil {
		configOption = fx.Supply(options.Config)
	}

	app.app = fx.New(
		// Core modules
		configOption,
		metrics.Module,
		store.Module,
		ingest.Module,

		// Provide base dependencies
		fx.Provide(
			func() *zap.Logger { return options.Logger },
			func() string { return options.Env },
			func() prometheus.Registerer { return options.Registerer },
		),

		// Configure fx
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		// Set timeouts
		fx.StopTimeout(30*time.Second),
		fx.StartTimeout(30*time.Second),

		fx.Invoke(registerHooks),
		fx.Populate(&app.store, &app.pool),
	)

	return app
}

// Err reports a wiring failure, such as an unreadable config file.
func (a *Application) Err() error {
	return a.app.Err()
}

func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// Submit queues a decoded profile for publication.
func (a *Application) Submit(ctx context.Context, p domain.Proxy) error {
	if a.pool == nil {
		if err := a.app.Err(); err != nil {
			return err
		}
		return ingest.ErrPoolStopped
	}
	return a.pool.Submit(ctx, p)
}

// Store exposes the published profiles.
func (a *Application) Store() *store.Store {
	return a.store
}
