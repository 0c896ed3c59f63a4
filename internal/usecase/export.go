package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
	"blind75-generator/internal/domain/sampling"
)

// ExportRequest describes one export. Zero values fall back to the generator defaults.
type ExportRequest struct {
	Size   int
	Format model.Format
}

// ExportConfig controls the defaults of the generator.
type ExportConfig struct {
	SampleSize int
	Filename   string
	SheetName  string
	Format     model.Format
}

// Generator samples the catalog and encodes the sample as a spreadsheet.
type Generator struct {
	problems ports.ProblemProvider
	sampler  *sampling.Sampler
	encoders map[model.Format]ports.SheetEncoder
	recorder ports.ExportRecorder
	logger   ports.Logger
	cfg      ExportConfig
}

// NewGenerator constructs a Generator. recorder may be nil.
func NewGenerator(
	problems ports.ProblemProvider,
	sampler *sampling.Sampler,
	encoders []ports.SheetEncoder,
	recorder ports.ExportRecorder,
	logger ports.Logger,
	cfg ExportConfig,
) *Generator {
	byFormat := make(map[model.Format]ports.SheetEncoder, len(encoders))
	for _, enc := range encoders {
		if enc != nil {
			byFormat[enc.Format()] = enc
		}
	}
	if cfg.Format == "" {
		cfg.Format = model.FormatXLSX
	}
	return &Generator{
		problems: problems,
		sampler:  sampler,
		encoders: byFormat,
		recorder: recorder,
		logger:   logger,
		cfg:      cfg,
	}
}

// Generate produces a freshly sampled export. Each call draws an independent sample.
func (g *Generator) Generate(ctx context.Context, req ExportRequest) (*model.ExportFile, error) {
	start := time.Now()
	if req.Size == 0 {
		req.Size = g.cfg.SampleSize
	}
	if req.Format == "" {
		req.Format = g.cfg.Format
	}

	file, err := g.generate(ctx, req)

	rows := 0
	if file != nil {
		rows = file.Rows
	}
	if g.recorder != nil {
		g.recorder.ObserveExport(req.Format, rows, time.Since(start), err)
	}
	if err != nil {
		g.logger.Error(ctx, "export failed", "size", req.Size, "format", req.Format, "error", err)
		return nil, err
	}

	g.logger.Info(ctx, "export generated",
		"size", req.Size,
		"format", req.Format,
		"rows", rows,
		"bytes", len(file.Data),
		"duration", time.Since(start))
	return file, nil
}

func (g *Generator) generate(ctx context.Context, req ExportRequest) (*model.ExportFile, error) {
	encoder, ok := g.encoders[req.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedFormat, req.Format)
	}

	catalog, err := g.problems.ListProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}

	sample, err := g.sampler.Sample(catalog, req.Size)
	if err != nil {
		return nil, err
	}

	sheet := BuildSheet(g.cfg.SheetName, sample)
	data, err := encoder.Encode(ctx, sheet)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("encode %s sheet: %w", req.Format, ctxErr)
		}
		return nil, model.NewSerializationError(req.Format, err)
	}

	return &model.ExportFile{
		Filename:    exportFilename(g.cfg.Filename, req.Format),
		Format:      req.Format,
		ContentType: req.Format.ContentType(),
		Rows:        len(sheet.Rows),
		Data:        data,
	}, nil
}

// BuildSheet lays out problems under the fixed ProblemHeader.
func BuildSheet(name string, problems []model.Problem) model.Sheet {
	header := make([]string, len(model.ProblemHeader))
	copy(header, model.ProblemHeader)

	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, p.Row())
	}

	return model.Sheet{Name: name, Header: header, Rows: rows}
}

func exportFilename(base string, format model.Format) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "export"
	}
	ext := format.Extension()
	if strings.HasSuffix(strings.ToLower(base), ext) {
		return base
	}
	return base + ext
}
