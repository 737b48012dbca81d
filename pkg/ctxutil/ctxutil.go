// Package ctxutil carries per-run values through context.Context.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// WithRunID stores the ID of the current CLI invocation in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns an empty string if absent.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// RunIDAttr returns the run ID as a log attribute.
func RunIDAttr(ctx context.Context) slog.Attr {
	return slog.String("run_id", RunIDFromCtx(ctx))
}
