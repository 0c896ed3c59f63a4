package ports

import "context"

// Logger is the structured, context-aware logging surface shared by use cases and adapters.
// Implementations may enrich records with values carried by ctx, such as the request ID.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
