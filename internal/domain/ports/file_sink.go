package ports

import (
	"context"

	"blind75-generator/internal/domain/model"
)

// FileSink persists a generated export and reports where it went.
type FileSink interface {
	Save(ctx context.Context, file *model.ExportFile) (string, error)
}
