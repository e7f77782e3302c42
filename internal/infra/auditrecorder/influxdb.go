//go:build !gcloud

package auditrecorder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/vetly/activity-scheduling/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleAuditRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule audit recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, schedule audit recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "schedule audit recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordBatch(ctx context.Context, records []domain.ScheduleAuditRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		// Real time as point timestamp so repeated operations on the
		// same template never overwrite each other.
		pointTime := time.Now()

		point := influxdb2.NewPoint(
			"schedule_audit",
			map[string]string{
				"operation": record.Operation,
				"trigger":   record.Trigger,
				"outcome":   record.Outcome,
				"template":  strconv.FormatInt(record.TemplateID, 10),
			},
			map[string]any{
				"device_id":     record.DeviceID,
				"reason":        record.Reason,
				"occurred_unix": record.OccurredAt.Unix(),
			},
			pointTime,
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write schedule audit record to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("operation", record.Operation),
				slog.Int64("template_id", record.TemplateID),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
