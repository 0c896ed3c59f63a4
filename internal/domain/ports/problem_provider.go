package ports

import (
	"context"

	"blind75-generator/internal/domain/model"
)

// ProblemProvider exposes the read-only practice catalog.
type ProblemProvider interface {
	ListProblems(ctx context.Context) ([]model.Problem, error)
}
