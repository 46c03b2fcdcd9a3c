package bootstrap

import (
	"context"

	"roomfinder/internal/pkg/config"
	"roomfinder/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracer,
	),
)

func NewTracer(lc fx.Lifecycle, cfg config.Config) (*tracing.Tracer, error) {
	tracer, err := tracing.New(cfg.Tracing)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracer.Shutdown(ctx)
		},
	})

	return tracer, nil
}
