//go:build gcloud

package logging

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// traceCorrelationAttrs emits the Cloud Logging trace correlation fields so log
// records link to their trace in the GCP console.
func traceCorrelationAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String("logging.googleapis.com/trace",
			fmt.Sprintf("projects/%s/traces/%s", projectID, spanCtx.TraceID().String())),
		slog.String("logging.googleapis.com/spanId", spanCtx.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", spanCtx.IsSampled()),
	}
}
