// Package notify schedules and cancels device notifications for activity
// occurrences, keeping the per-device notification store in step with the
// device's live schedule.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/devicegw"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
)

//go:generate mockgen -source=scheduler.go -destination=mock.go -package=notify

type occurrenceInstant struct {
	at      time.Time
	hour    int
	minute  int
	weekday time.Weekday
}

type Scheduler interface {
	// Schedule registers a device notification for the occurrence and
	// returns its handle. An empty handle with a nil error means the
	// occurrence was skipped: notifications disabled, no permission, or
	// the instant is not in the future.
	Schedule(ctx context.Context, deviceID string, occ domain.VirtualOccurrence, petName string) (string, error)

	// Reschedule is Schedule preceded by CancelAllForTemplate, as one
	// call.
	Reschedule(ctx context.Context, deviceID string, occ domain.VirtualOccurrence, petName string) (string, error)

	// Cancel removes one scheduled notification by handle. Failures are
	// logged, not escalated.
	Cancel(ctx context.Context, deviceID, handle string) bool

	// CancelAllForTemplate cancels every activity-reminder notification
	// attributed to the template. Extension reminders are a disjoint
	// class and are left alone.
	CancelAllForTemplate(ctx context.Context, deviceID string, templateID int64) error

	// PurgeTemplate cancels everything attributed to the template,
	// extension reminders included. Used when the template is deleted.
	PurgeTemplate(ctx context.Context, deviceID string, templateID int64) error

	// CleanupExpired drops notification records whose scheduled instant
	// has passed, cancelling their handles best-effort. Returns the
	// number of records dropped.
	CleanupExpired(ctx context.Context, deviceID string) (int, error)
}

type schedulerImpl struct {
	gateway         devicegw.DeviceNotifications
	store           domain.NotificationStore
	codec           *localtime.Codec
	clock           domain.Clock
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewScheduler(
	gateway devicegw.DeviceNotifications,
	store domain.NotificationStore,
	codec *localtime.Codec,
	clock domain.Clock,
	scheduleMetrics *metrics.ScheduleMetrics,
) Scheduler {
	return &schedulerImpl{
		gateway:         gateway,
		store:           store,
		codec:           codec,
		clock:           clock,
		scheduleMetrics: scheduleMetrics,
	}
}

func (s *schedulerImpl) Schedule(ctx context.Context, deviceID string, occ domain.VirtualOccurrence, petName string) (string, error) {
	templateID := occ.SourceTemplateID()

	instant, ok, err := s.admit(ctx, deviceID, occ)
	if err != nil || !ok {
		return "", err
	}

	// Guarantee at most one live schedule per template.
	if err := s.CancelAllForTemplate(ctx, deviceID, templateID); err != nil {
		slog.WarnContext(ctx, "failed to cancel existing schedules before reschedule",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
	}

	return s.register(ctx, deviceID, occ, petName, instant)
}

// admit applies the scheduling gates: notifications enabled on the
// occurrence, device permission granted, instant still in the future.
func (s *schedulerImpl) admit(ctx context.Context, deviceID string, occ domain.VirtualOccurrence) (time.Time, bool, error) {
	templateID := occ.SourceTemplateID()

	if !occ.Notify {
		slog.DebugContext(ctx, "skipping occurrence with notifications disabled",
			slog.Int64("template_id", templateID),
		)
		return time.Time{}, false, nil
	}

	granted, err := s.gateway.HasPermission(ctx, deviceID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to check notification permission: %w", err)
	}
	if !granted {
		slog.InfoContext(ctx, "skipping schedule, notification permission not granted",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
		)
		return time.Time{}, false, nil
	}

	instant, err := s.codec.Parse(occ.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("occurrence date: %w", err)
	}
	if !instant.After(s.clock.Now()) {
		slog.DebugContext(ctx, "skipping past-dated occurrence",
			slog.Int64("template_id", templateID),
			slog.Time("instant", instant),
		)
		return time.Time{}, false, nil
	}

	return instant, true, nil
}

// register assumes any previous schedule for the template is already gone.
func (s *schedulerImpl) register(ctx context.Context, deviceID string, occ domain.VirtualOccurrence, petName string, instant time.Time) (string, error) {
	templateID := occ.SourceTemplateID()

	trigger := selectTrigger(occ.Repeat, occurrenceInstant{
		at:      instant,
		hour:    instant.Hour(),
		minute:  instant.Minute(),
		weekday: instant.Weekday(),
	})
	content := buildContent(occ, petName)

	handle, err := s.gateway.Schedule(ctx, deviceID, content, trigger)
	if err != nil {
		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordNotificationScheduled(ctx, string(trigger.Type), string(domain.ClassActivityReminder), "failed")
		}
		return "", fmt.Errorf("failed to schedule notification for template %d: %w", templateID, err)
	}

	slog.InfoContext(ctx, "notification scheduled",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", templateID),
		slog.String("handle", handle),
		slog.String("trigger_type", string(trigger.Type)),
		slog.Time("instant", instant),
	)
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordNotificationScheduled(ctx, string(trigger.Type), string(domain.ClassActivityReminder), "success")
	}

	record := domain.NotificationRecord{
		TemplateID:  templateID,
		Handle:      handle,
		ScheduledAt: instant,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.store.Save(ctx, deviceID, record); err != nil {
		// The device schedule is live; a stale store is repaired by the
		// next cleanup sweep.
		slog.WarnContext(ctx, "failed to save notification record",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
	}

	return handle, nil
}

func (s *schedulerImpl) Reschedule(ctx context.Context, deviceID string, occ domain.VirtualOccurrence, petName string) (string, error) {
	// The old schedule is torn down even when the replacement is skipped
	// (disabled, no permission, past-dated).
	if err := s.CancelAllForTemplate(ctx, deviceID, occ.SourceTemplateID()); err != nil {
		slog.WarnContext(ctx, "failed to cancel before reschedule",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", occ.SourceTemplateID()),
			slog.String("error", err.Error()),
		)
	}

	instant, ok, err := s.admit(ctx, deviceID, occ)
	if err != nil || !ok {
		return "", err
	}
	return s.register(ctx, deviceID, occ, petName, instant)
}

func (s *schedulerImpl) Cancel(ctx context.Context, deviceID, handle string) bool {
	if err := s.gateway.Cancel(ctx, deviceID, handle); err != nil {
		slog.WarnContext(ctx, "failed to cancel notification",
			slog.String("device_id", deviceID),
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
		return false
	}

	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordNotificationCancelled(ctx, string(domain.ClassActivityReminder))
	}

	s.removeRecordByHandle(ctx, deviceID, handle)
	return true
}

func (s *schedulerImpl) CancelAllForTemplate(ctx context.Context, deviceID string, templateID int64) error {
	return s.cancelMatching(ctx, deviceID, templateID, false)
}

func (s *schedulerImpl) PurgeTemplate(ctx context.Context, deviceID string, templateID int64) error {
	return s.cancelMatching(ctx, deviceID, templateID, true)
}

func (s *schedulerImpl) cancelMatching(ctx context.Context, deviceID string, templateID int64, includeExtensions bool) error {
	scheduled, err := s.gateway.ListScheduled(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("failed to list scheduled notifications: %w", err)
	}

	cancelled := 0
	for _, item := range scheduled {
		if item.Content.Data.TemplateID != templateID {
			continue
		}
		if !includeExtensions && item.Content.Data.Type == domain.ClassExtensionReminder {
			continue
		}

		if err := s.gateway.Cancel(ctx, deviceID, item.Handle); err != nil {
			slog.WarnContext(ctx, "failed to cancel notification for template",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", templateID),
				slog.String("handle", item.Handle),
				slog.String("error", err.Error()),
			)
			continue
		}
		cancelled++
		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordNotificationCancelled(ctx, string(item.Content.Data.Type))
		}
	}

	if cancelled > 0 {
		slog.InfoContext(ctx, "cancelled notifications for template",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.Int("cancelled", cancelled),
		)
	}

	if err := s.store.Delete(ctx, deviceID, templateID); err != nil {
		slog.WarnContext(ctx, "failed to delete notification record",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", templateID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *schedulerImpl) CleanupExpired(ctx context.Context, deviceID string) (int, error) {
	records, err := s.store.List(ctx, deviceID)
	if err != nil {
		return 0, fmt.Errorf("failed to list notification records: %w", err)
	}

	now := s.clock.Now()
	removed := 0
	for _, record := range records {
		if !record.ScheduledAt.Before(now) {
			continue
		}

		if err := s.gateway.Cancel(ctx, deviceID, record.Handle); err != nil {
			slog.WarnContext(ctx, "failed to cancel expired handle",
				slog.String("device_id", deviceID),
				slog.String("handle", record.Handle),
				slog.String("error", err.Error()),
			)
		}
		if err := s.store.Delete(ctx, deviceID, record.TemplateID); err != nil {
			slog.WarnContext(ctx, "failed to delete expired notification record",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", record.TemplateID),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.InfoContext(ctx, "expired notification records removed",
			slog.String("device_id", deviceID),
			slog.Int("removed", removed),
		)
	}
	return removed, nil
}

func (s *schedulerImpl) removeRecordByHandle(ctx context.Context, deviceID, handle string) {
	records, err := s.store.List(ctx, deviceID)
	if err != nil {
		slog.WarnContext(ctx, "failed to list notification records",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		return
	}
	for _, record := range records {
		if record.Handle != handle {
			continue
		}
		if err := s.store.Delete(ctx, deviceID, record.TemplateID); err != nil {
			slog.WarnContext(ctx, "failed to delete notification record",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", record.TemplateID),
				slog.String("error", err.Error()),
			)
		}
		return
	}
}
