package auditrecorder

import (
	"context"

	"github.com/vetly/activity-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.ScheduleAuditRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordBatch(_ context.Context, _ []domain.ScheduleAuditRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
