package domain

import (
	"context"
	"time"
)

// ScheduleAuditRecord is one schedule/cancel/extension outcome, recorded
// for offline analysis of scheduling behavior.
type ScheduleAuditRecord struct {
	DeviceID   string
	Operation  string
	TemplateID int64
	Trigger    string
	Outcome    string
	Reason     string
	OccurredAt time.Time
}

type ScheduleAuditRecorder interface {
	RecordBatch(ctx context.Context, records []ScheduleAuditRecord) error
	Flush(ctx context.Context) error
	Close() error
}
