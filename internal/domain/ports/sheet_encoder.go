package ports

import (
	"context"

	"blind75-generator/internal/domain/model"
)

// SheetEncoder serializes a sheet into one spreadsheet container format.
type SheetEncoder interface {
	Format() model.Format
	Encode(ctx context.Context, sheet model.Sheet) ([]byte, error)
}
