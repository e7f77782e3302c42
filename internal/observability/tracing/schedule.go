package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const scheduleTracerName = "github.com/vetly/activity-scheduling/internal/service"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartExpansionSpan(ctx context.Context, templateCount int) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.recurrence_expansion",
		trace.WithAttributes(
			attribute.Int("template_count", templateCount),
		),
	)
}

func StartScheduleSpan(ctx context.Context, deviceID string, templateID int64) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.notification_schedule",
		trace.WithAttributes(
			attribute.String("device_id", deviceID),
			attribute.Int64("template_id", templateID),
		),
	)
}

func StartExtensionSpan(ctx context.Context, deviceID string, templateID int64) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.extension_accept",
		trace.WithAttributes(
			attribute.String("device_id", deviceID),
			attribute.Int64("template_id", templateID),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordExpansionResult(span trace.Span, generated int, err error) {
	span.SetAttributes(
		attribute.Int("expansion.generated_count", generated),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

func RecordExtensionResult(span trace.Span, createdCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("extension.created_count", createdCount),
		attribute.Int("extension.failed_count", failedCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// InjectToHTTPRequest propagates the active trace context onto an outgoing
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
