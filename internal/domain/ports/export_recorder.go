package ports

import (
	"time"

	"blind75-generator/internal/domain/model"
)

// ExportRecorder observes the outcome of export attempts.
type ExportRecorder interface {
	ObserveExport(format model.Format, rows int, duration time.Duration, err error)
}
