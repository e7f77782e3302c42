//go:build gcloud

package auditrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/vetly/activity-scheduling/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	OccurredAt time.Time `bigquery:"occurred_at"`
	DeviceID   string    `bigquery:"device_id"`
	Operation  string    `bigquery:"operation"`
	TemplateID int64     `bigquery:"template_id"`
	Trigger    string    `bigquery:"trigger"`
	Outcome    string    `bigquery:"outcome"`
	Reason     string    `bigquery:"reason"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleAuditRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule audit recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, schedule audit recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, schedule audit recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "schedule audit recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordBatch(ctx context.Context, records []domain.ScheduleAuditRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	bqRecords := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		bqRecords = append(bqRecords, &bigQueryRecord{
			RecordedAt: now,
			OccurredAt: record.OccurredAt,
			DeviceID:   record.DeviceID,
			Operation:  record.Operation,
			TemplateID: record.TemplateID,
			Trigger:    record.Trigger,
			Outcome:    record.Outcome,
			Reason:     record.Reason,
		})
	}

	if err := r.inserter.Put(ctx, bqRecords); err != nil {
		slog.WarnContext(ctx, "failed to insert schedule audit records to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
