package log

import (
	"context"

	"github.com/google/uuid"
)

type ContextKey string

const (
	ContextKeyRunID ContextKey = "logContextKeyRunID"
)

// PutRunID attaches a fresh run identifier to the context so that
// every entry logged during one invocation can be correlated
func PutRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, uuid.New().String())
}

func GetRunID(ctx context.Context) string {
	contextRunID := ctx.Value(ContextKeyRunID)
	if contextRunID == nil {
		return ""
	}

	runID, ok := contextRunID.(string)
	if !ok {
		return ""
	}

	return runID
}
