package usecase

import (
	"context"
	"fmt"

	"blind75-generator/internal/domain/ports"
)

// Archiver generates an export and stores it through a FileSink.
type Archiver struct {
	generator *Generator
	sink      ports.FileSink
	logger    ports.Logger
}

// NewArchiver constructs an Archiver.
func NewArchiver(generator *Generator, sink ports.FileSink, logger ports.Logger) *Archiver {
	return &Archiver{
		generator: generator,
		sink:      sink,
		logger:    logger,
	}
}

// Archive describes a stored export.
type Archive struct {
	Location string
	Rows     int
}

// Run writes one export and reports where it was saved.
func (a *Archiver) Run(ctx context.Context, req ExportRequest) (Archive, error) {
	file, err := a.generator.Generate(ctx, req)
	if err != nil {
		return Archive{}, err
	}

	location, err := a.sink.Save(ctx, file)
	if err != nil {
		a.logger.Error(ctx, "failed to save export", "file", file.Filename, "error", err)
		return Archive{}, fmt.Errorf("save export: %w", err)
	}

	a.logger.Info(ctx, "export saved", "location", location, "rows", file.Rows)
	return Archive{Location: location, Rows: file.Rows}, nil
}
