package app

import (
	"context"
	"io"

	"blind75-generator/internal/adapter/catalog"
	"blind75-generator/internal/adapter/terminal"
	"blind75-generator/internal/usecase"
)

// CLI backs the one-shot command line operations.
type CLI struct {
	catalog  *catalog.Store
	archiver *usecase.Archiver
}

// NewCLI constructs a CLI.
func NewCLI(store *catalog.Store, archiver *usecase.Archiver) *CLI {
	return &CLI{catalog: store, archiver: archiver}
}

// Generate writes one export to disk and reports it on out.
func (c *CLI) Generate(ctx context.Context, req usecase.ExportRequest, out io.Writer) error {
	archive, err := c.archiver.Run(ctx, req)
	if err != nil {
		return err
	}
	return terminal.NewRenderer(out).Saved(archive.Location, archive.Rows)
}

// Preview prints the catalog stats and the first rows of the catalog.
func (c *CLI) Preview(out io.Writer, limit int) error {
	r := terminal.NewRenderer(out)
	if err := r.Stats(c.catalog.Stats()); err != nil {
		return err
	}
	return r.Preview(c.catalog.Preview(limit))
}
