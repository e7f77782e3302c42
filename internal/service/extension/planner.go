// Package extension detects when a recurring series is about to run out of
// generated occurrences and drives the "extend this series?" flow: a
// reminder notification plus a queued prompt, and the continuation work
// once the user answers.
package extension

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

// Local hour at which extension reminders fire.
const defaultReminderHour = 10

// Days covered by the default generation horizon of each unit. A simple
// daily rule generates 7 occurrences spanning 7 days, weekly 4 spanning
// 28, and so on.
const (
	horizonDaysDay   = 7
	horizonDaysWeek  = 28
	horizonDaysMonth = 90
	horizonDaysYear  = 365
)

//go:generate mockgen -source=planner.go -destination=mock.go -package=extension

func horizonDays(kind domain.RepeatKind) (int, bool) {
	switch kind {
	case domain.RepeatDay:
		return horizonDaysDay, true
	case domain.RepeatWeek:
		return horizonDaysWeek, true
	case domain.RepeatMonth:
		return horizonDaysMonth, true
	case domain.RepeatYear:
		return horizonDaysYear, true
	default:
		return 0, false
	}
}

type Planner interface {
	// Plan arms an extension reminder for the template: a one-shot
	// notification the day after the series' horizon runs out, plus a
	// queued prompt for the same instant. Returns the notification
	// handle, or empty when no reminder was armed: the rule is not a
	// simple single-unit repeat, or the reminder instant is already in
	// the past.
	Plan(ctx context.Context, deviceID string, template domain.ActivityTemplate) (string, error)
}

type plannerImpl struct {
	gateway         devicegw.DeviceNotifications
	prompts         domain.PromptStore
	codec           *localtime.Codec
	clock           domain.Clock
	reminderHour    int
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewPlanner(
	gateway devicegw.DeviceNotifications,
	prompts domain.PromptStore,
	codec *localtime.Codec,
	clock domain.Clock,
	reminderHour int,
	scheduleMetrics *metrics.ScheduleMetrics,
) Planner {
	if reminderHour <= 0 || reminderHour > 23 {
		reminderHour = defaultReminderHour
	}
	return &plannerImpl{
		gateway:         gateway,
		prompts:         prompts,
		codec:           codec,
		clock:           clock,
		reminderHour:    reminderHour,
		scheduleMetrics: scheduleMetrics,
	}
}

func (p *plannerImpl) Plan(ctx context.Context, deviceID string, template domain.ActivityTemplate) (string, error) {
	// Custom multi-unit intervals are excluded from extension reminders.
	if !template.Repeat.IsSimple() {
		return "", nil
	}

	unit, ok := domain.UnitForKind(template.Repeat.Kind)
	if !ok {
		return "", nil
	}
	days, ok := horizonDays(template.Repeat.Kind)
	if !ok {
		return "", nil
	}

	start, err := p.codec.Parse(template.Date)
	if err != nil {
		return "", fmt.Errorf("template %d date: %w", template.ID, err)
	}

	lastOccurrence := start.AddDate(0, 0, days*template.Repeat.Interval)
	dayAfter := lastOccurrence.AddDate(0, 0, 1)
	reminderAt := time.Date(dayAfter.Year(), dayAfter.Month(), dayAfter.Day(),
		p.reminderHour, 0, 0, 0, p.codec.Location())

	if !reminderAt.After(p.clock.Now()) {
		slog.DebugContext(ctx, "extension reminder not armed, instant already passed",
			slog.Int64("template_id", template.ID),
			slog.Time("reminder_at", reminderAt),
		)
		return "", nil
	}

	content := reminderContent(template, unit)

	handle, err := p.gateway.Schedule(ctx, deviceID, content, domain.OneShotTrigger(reminderAt))
	if err != nil {
		return "", fmt.Errorf("failed to schedule extension reminder for template %d: %w", template.ID, err)
	}

	slog.InfoContext(ctx, "extension reminder armed",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", template.ID),
		slog.String("handle", handle),
		slog.Time("reminder_at", reminderAt),
	)

	prompt := domain.ExtensionPrompt{
		TemplateID:    template.ID,
		TemplateTitle: template.Title,
		RepeatUnit:    unit,
		Interval:      template.Repeat.Interval,
		PetID:         template.PetID,
		Category:      template.Category,
		ScheduledDate: reminderAt,
		CreatedAt:     p.clock.Now(),
	}
	// The prompt is best-effort: a queue failure must not roll back the
	// already-scheduled notification.
	if err := p.prompts.Enqueue(ctx, deviceID, prompt); err != nil {
		slog.WarnContext(ctx, "failed to enqueue extension prompt",
			slog.String("device_id", deviceID),
			slog.Int64("template_id", template.ID),
			slog.String("error", err.Error()),
		)
	} else if p.scheduleMetrics != nil {
		p.scheduleMetrics.RecordExtensionPrompt(ctx, "offered")
	}

	return handle, nil
}

func reminderContent(template domain.ActivityTemplate, unit domain.RepeatUnit) domain.NotificationContent {
	return domain.NotificationContent{
		Title: fmt.Sprintf("Continue %s?", template.Title),
		Body:  fmt.Sprintf("Your %s reminders for %s are about to run out. Open the app to extend them.", unit, template.Title),
		Sound: "default",
		Data: domain.NotificationData{
			Type:             domain.ClassExtensionReminder,
			TemplateID:       template.ID,
			PetID:            template.PetID,
			Category:         template.Category,
			OriginalRepeat:   unit,
			OriginalInterval: template.Repeat.Interval,
		},
	}
}
