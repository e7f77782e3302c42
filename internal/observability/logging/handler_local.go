//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// traceCorrelationAttrs is a no-op outside Cloud Run; local logs carry
// trace context through the request_id attribute instead.
func traceCorrelationAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
