package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const TraceIDHeader = "X-Trace-Id"

// InjectTraceID attaches logger with a freshly generated trace id to the context
func InjectTraceID(ctx context.Context) context.Context {
	return InjectGivenTraceID(ctx, uuid.New().String())
}

// InjectGivenTraceID attaches logger with the given trace id, it's used when the id is propagated by a caller
func InjectGivenTraceID(ctx context.Context, id string) context.Context {
	logger := log.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}
