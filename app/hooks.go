package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"subprofile/internal/store"
)

type hookParams struct {
	fx.In

	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
	Store     *store.Store
	Env       string
}

func registerHooks(p hookParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting application", zap.String("env", p.Env))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("stopping application", zap.Int("profiles", p.Store.Len()))
			return nil
		},
	})
}
