package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "schedule.service"
)

type ScheduleMetrics struct {
	notificationsScheduled    metric.Int64Counter
	notificationsCancelled    metric.Int64Counter
	occurrencesGenerated      metric.Int64Counter
	expansionDuration         metric.Float64Histogram
	extensionPrompts          metric.Int64Counter
	extensionTemplatesCreated metric.Int64Counter
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	notificationsScheduled, err := meter.Int64Counter(
		"schedule_notifications_total",
		metric.WithDescription("Total number of notification schedule attempts"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsCancelled, err := meter.Int64Counter(
		"schedule_notifications_cancelled_total",
		metric.WithDescription("Total number of cancelled notifications"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	occurrencesGenerated, err := meter.Int64Counter(
		"schedule_occurrences_generated_total",
		metric.WithDescription("Total number of virtual occurrences generated"),
		metric.WithUnit("{occurrence}"),
	)
	if err != nil {
		return nil, err
	}

	expansionDuration, err := meter.Float64Histogram(
		"schedule_expansion_duration_seconds",
		metric.WithDescription("Time spent expanding recurrence rules"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	extensionPrompts, err := meter.Int64Counter(
		"schedule_extension_prompts_total",
		metric.WithDescription("Extension prompt lifecycle events"),
		metric.WithUnit("{prompt}"),
	)
	if err != nil {
		return nil, err
	}

	extensionTemplatesCreated, err := meter.Int64Counter(
		"schedule_extension_templates_created_total",
		metric.WithDescription("Templates created by series extension"),
		metric.WithUnit("{template}"),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		notificationsScheduled:    notificationsScheduled,
		notificationsCancelled:    notificationsCancelled,
		occurrencesGenerated:      occurrencesGenerated,
		expansionDuration:         expansionDuration,
		extensionPrompts:          extensionPrompts,
		extensionTemplatesCreated: extensionTemplatesCreated,
	}, nil
}

func (m *ScheduleMetrics) RecordNotificationScheduled(ctx context.Context, triggerType, class, outcome string) {
	m.notificationsScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger_type", triggerType),
		attribute.String("class", class),
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordNotificationCancelled(ctx context.Context, class string) {
	m.notificationsCancelled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("class", class),
	))
}

func (m *ScheduleMetrics) RecordOccurrencesGenerated(ctx context.Context, unit string, count int) {
	m.occurrencesGenerated.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("unit", unit),
	))
}

func (m *ScheduleMetrics) RecordExpansionDuration(ctx context.Context, duration time.Duration) {
	m.expansionDuration.Record(ctx, duration.Seconds())
}

func (m *ScheduleMetrics) RecordExtensionPrompt(ctx context.Context, outcome string) {
	m.extensionPrompts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordExtensionTemplatesCreated(ctx context.Context, count int) {
	m.extensionTemplatesCreated.Add(ctx, int64(count))
}
