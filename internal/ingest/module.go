package ingest

import (
	"context"

	"go.uber.org/fx"
	"subprofile/internal/interfaces"
)

var Module = fx.Options(
	fx.Provide(NewPool),
	fx.Provide(func(p *Pool) interfaces.IngestPool { return p }),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, pool *Pool) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return pool.Stop()
		},
	})
}
