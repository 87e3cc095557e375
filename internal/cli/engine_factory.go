package cli

import (
	"log/slog"

	hop "github.com/hadronized/hop.kak"
	"github.com/hadronized/hop.kak/pkg/observability"
)

// createEngine initializes a hop engine with standard CLI conventions.
func createEngine(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) *hop.Engine {
	engineOpts := []hop.Option{
		hop.WithLogger(logger),
		hop.WithLifecycleHooks(metrics.Hooks()),
	}

	if opts.Debug {
		engineOpts = append(engineOpts, hop.WithLifecycleHooks(createDebugHooks(logger)))
	}

	return hop.New(engineOpts...)
}
