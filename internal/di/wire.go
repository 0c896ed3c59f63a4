//go:build wireinject

package di

import (
	"github.com/google/wire"

	"blind75-generator/internal/adapter/metrics"
	"blind75-generator/internal/app"
	"blind75-generator/internal/domain/ports"
)

// InitializeApp wires the HTTP service together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		exportSet,
		provideSlogLogger,
		provideRecorder,
		wire.Bind(new(ports.ExportRecorder), new(*metrics.Recorder)),
		provideArchiveSink,
		provideHandler,
		provideRouter,
		provideServer,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

// InitializeCLI wires the one-shot commands, writing exports into dir.
func InitializeCLI(dir OutputDir) (*app.CLI, error) {
	wire.Build(
		exportSet,
		provideCLISlogLogger,
		provideNoRecorder,
		provideCLISink,
		app.NewCLI,
	)
	return nil, nil
}
