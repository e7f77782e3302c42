// Package logging builds the process-wide slog logger and carries request
// identity through contexts.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type Environment string

const (
	EnvDev  Environment = "development"
	EnvProd Environment = "production"
)

// Module labels log records with the subsystem that emitted them.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the request id in the context for log correlation
// and propagation to downstream services.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id, or empty when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ValidateAndExtractRequestID returns the given id when it is a valid UUID,
// otherwise a fresh one. Inbound ids are never trusted blindly.
func ValidateAndExtractRequestID(requestID string) string {
	if _, err := uuid.Parse(requestID); err == nil {
		return requestID
	}
	return uuid.NewString()
}

// NewLogger builds the service logger. Production uses JSON records;
// development uses the text handler for readability.
func NewLogger(env Environment, level slog.Leveler, service ServiceInfo, module Module, gcpProjectID string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if env == EnvProd {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		inner = slog.NewTextHandler(os.Stdout, opts)
	}

	inner = inner.WithAttrs([]slog.Attr{
		slog.String("service", service.Name),
		slog.String("version", service.Version),
	})
	if service.Revision != "" {
		inner = inner.WithAttrs([]slog.Attr{slog.String("revision", service.Revision)})
	}
	if module != "" {
		inner = inner.WithAttrs([]slog.Attr{slog.String("module", string(module))})
	}

	return slog.New(&contextHandler{
		Handler:      inner,
		gcpProjectID: gcpProjectID,
	})
}

// contextHandler decorates records with per-request context attributes.
type contextHandler struct {
	slog.Handler
	gcpProjectID string
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if attrs := traceCorrelationAttrs(ctx, h.gcpProjectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		Handler:      h.Handler.WithAttrs(attrs),
		gcpProjectID: h.gcpProjectID,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		Handler:      h.Handler.WithGroup(name),
		gcpProjectID: h.gcpProjectID,
	}
}
