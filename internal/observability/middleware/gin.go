// Package middleware carries the gin handlers shared by every route:
// request identity, tracing, metrics and request logging.
package middleware

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vetly/activity-scheduling/internal/observability/logging"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
)

const requestIDHeader = "x-request-id"

type GinConfig struct {
	// SkipPaths are served without tracing, metrics or request logs.
	SkipPaths []string

	Module logging.Module

	// Worker marks requests driven by a queue rather than a user; their
	// span name comes from JobNameResolver instead of the route.
	Worker          bool
	TracerName      string
	JobNameResolver func(c *gin.Context) string

	HTTPMetrics *metrics.HTTPMetrics
}

func Gin(cfg GinConfig) gin.HandlerFunc {
	tracer := otel.Tracer(cfg.TracerName)
	propagator := otel.GetTextMapPropagator()

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader(requestIDHeader))
		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		ctx = propagator.Extract(ctx, propagation.HeaderCarrier(c.Request.Header))

		spanName := c.Request.Method + " " + c.FullPath()
		spanKind := trace.SpanKindServer
		if cfg.Worker {
			spanKind = trace.SpanKindConsumer
			if cfg.JobNameResolver != nil {
				if job := cfg.JobNameResolver(c); job != "" {
					spanName = job
				}
			}
		}

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(spanKind),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.String("module", string(cfg.Module)),
				attribute.String("request_id", requestID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RecordRequestStart(ctx)
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RecordRequestEnd(ctx, c.Request.Method, c.FullPath(), status, duration)
		}

		logFn := slog.InfoContext
		if status >= 500 {
			logFn = slog.ErrorContext
		} else if status >= 400 {
			logFn = slog.WarnContext
		}
		logFn(ctx, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}

// PanicRecoveryGin turns panics into 500 responses with a logged stack
// reference instead of killing the process.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
