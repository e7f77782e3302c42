package extension

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/observability/metrics"
	"github.com/vetly/activity-scheduling/internal/observability/tracing"
	"github.com/vetly/activity-scheduling/internal/service/notify"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
)

type Orchestrator interface {
	// Accept continues the series behind a prompt: one non-repeating
	// template per continuation date, a notification per created
	// template, and a re-armed extension reminder anchored on the last
	// one. The prompt is consumed whatever the outcome. Fails with
	// domain.ErrPetNotFound when the pet no longer exists, and with
	// domain.ErrNothingExtended when no template could be created.
	Accept(ctx context.Context, deviceID string, prompt domain.ExtensionPrompt) (*AcceptResult, error)

	// Dismiss consumes the prompt without touching any schedule.
	// Idempotent.
	Dismiss(ctx context.Context, deviceID string, templateID int64, scheduledDate time.Time) error
}

type orchestratorImpl struct {
	store           activitystore.ActivityStore
	pets            activitystore.PetDirectory
	prompts         domain.PromptStore
	expander        recurrence.Expander
	scheduler       notify.Scheduler
	planner         Planner
	codec           *localtime.Codec
	clock           domain.Clock
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewOrchestrator(
	store activitystore.ActivityStore,
	pets activitystore.PetDirectory,
	prompts domain.PromptStore,
	expander recurrence.Expander,
	scheduler notify.Scheduler,
	planner Planner,
	codec *localtime.Codec,
	clock domain.Clock,
	scheduleMetrics *metrics.ScheduleMetrics,
) Orchestrator {
	return &orchestratorImpl{
		store:           store,
		pets:            pets,
		prompts:         prompts,
		expander:        expander,
		scheduler:       scheduler,
		planner:         planner,
		codec:           codec,
		clock:           clock,
		scheduleMetrics: scheduleMetrics,
	}
}

func (o *orchestratorImpl) Accept(ctx context.Context, deviceID string, prompt domain.ExtensionPrompt) (*AcceptResult, error) {
	ctx, span := tracing.StartExtensionSpan(ctx, deviceID, prompt.TemplateID)
	defer span.End()

	// The prompt is consumed regardless of outcome so it is never
	// re-offered.
	defer func() {
		if err := o.prompts.Remove(ctx, deviceID, prompt.TemplateID, prompt.ScheduledDate); err != nil {
			slog.WarnContext(ctx, "failed to remove consumed extension prompt",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", prompt.TemplateID),
				slog.String("error", err.Error()),
			)
		}
	}()

	petName, err := o.resolvePet(ctx, prompt.PetID)
	if err != nil {
		tracing.RecordExtensionResult(span, 0, 0, err)
		return nil, err
	}

	kind, ok := domain.KindForUnit(prompt.RepeatUnit)
	if !ok {
		tracing.RecordExtensionResult(span, 0, 0, domain.ErrNothingExtended)
		return nil, fmt.Errorf("prompt for template %d carries unknown repeat unit %q: %w",
			prompt.TemplateID, prompt.RepeatUnit, domain.ErrNothingExtended)
	}
	rule := domain.RepeatRule{Kind: kind, Interval: 1, Bound: domain.DefaultHorizonBound()}

	dates := o.expander.Expand(prompt.ScheduledDate, rule)
	if len(dates) == 0 {
		tracing.RecordExtensionResult(span, 0, 0, domain.ErrNothingExtended)
		return nil, domain.ErrNothingExtended
	}

	// The original template may have been deleted; the prompt's cached
	// fields are enough, the original only enriches the copies.
	original := o.lookupOriginal(ctx, prompt)

	result := &AcceptResult{}
	for _, date := range dates {
		local := o.codec.Format(date)
		input := activitystore.CreateActivityInput{
			PetID:      prompt.PetID,
			Category:   string(prompt.Category),
			Title:      prompt.TemplateTitle,
			Date:       local,
			Time:       local,
			Notify:     true,
			RepeatType: string(domain.RepeatNone),
		}
		if original != nil {
			input.Notes = original.Notes
			input.FoodType = original.FoodType
			input.Quantity = original.Quantity
			input.Duration = original.Duration
		}

		created, err := o.store.Create(ctx, input)
		if err != nil {
			slog.WarnContext(ctx, "failed to create continuation activity",
				slog.String("device_id", deviceID),
				slog.Int64("template_id", prompt.TemplateID),
				slog.String("date", local),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("create %s: %v", local, err))
			continue
		}
		result.CreatedTemplates = append(result.CreatedTemplates, *created)
	}

	if len(result.CreatedTemplates) == 0 {
		tracing.RecordExtensionResult(span, 0, len(result.Errors), domain.ErrNothingExtended)
		return nil, fmt.Errorf("%w: %s", domain.ErrNothingExtended, errors.Join(toErrors(result.Errors)...))
	}

	for _, created := range result.CreatedTemplates {
		occ := domain.TemplateOccurrence(created)
		if _, err := o.scheduler.Schedule(ctx, deviceID, occ, petName); err != nil {
			slog.WarnContext(ctx, "failed to schedule continuation notification",
				slog.String("device_id", deviceID),
				slog.Int64("activity_id", created.ID),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("schedule %d: %v", created.ID, err))
			continue
		}
		result.ScheduledCount++
	}

	// Re-arm from the last continuation so the cycle repeats. The anchor
	// copy carries the original simple rule; the stored templates stay
	// non-repeating.
	anchor := result.CreatedTemplates[len(result.CreatedTemplates)-1]
	anchor.Repeat = rule
	reminderHandle, err := o.planner.Plan(ctx, deviceID, anchor)
	if err != nil {
		slog.WarnContext(ctx, "failed to re-arm extension reminder",
			slog.String("device_id", deviceID),
			slog.Int64("anchor_id", anchor.ID),
			slog.String("error", err.Error()),
		)
		result.Errors = append(result.Errors, fmt.Sprintf("re-arm: %v", err))
	}
	result.ReminderHandle = reminderHandle

	if o.scheduleMetrics != nil {
		o.scheduleMetrics.RecordExtensionPrompt(ctx, "accepted")
		o.scheduleMetrics.RecordExtensionTemplatesCreated(ctx, len(result.CreatedTemplates))
	}

	slog.InfoContext(ctx, "series extended",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", prompt.TemplateID),
		slog.Int("created", len(result.CreatedTemplates)),
		slog.Int("scheduled", result.ScheduledCount),
		slog.Int("errors", len(result.Errors)),
	)
	tracing.RecordExtensionResult(span, len(result.CreatedTemplates), len(result.Errors), nil)
	return result, nil
}

func (o *orchestratorImpl) Dismiss(ctx context.Context, deviceID string, templateID int64, scheduledDate time.Time) error {
	if err := o.prompts.Remove(ctx, deviceID, templateID, scheduledDate); err != nil {
		return fmt.Errorf("failed to remove extension prompt: %w", err)
	}
	if o.scheduleMetrics != nil {
		o.scheduleMetrics.RecordExtensionPrompt(ctx, "dismissed")
	}
	slog.InfoContext(ctx, "extension prompt dismissed",
		slog.String("device_id", deviceID),
		slog.Int64("template_id", templateID),
	)
	return nil
}

func (o *orchestratorImpl) resolvePet(ctx context.Context, petID int64) (string, error) {
	pets, err := o.pets.ListPets(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list pets: %w", err)
	}
	for _, pet := range pets {
		if pet.ID == petID {
			return pet.Name, nil
		}
	}
	return "", domain.ErrPetNotFound
}

func (o *orchestratorImpl) lookupOriginal(ctx context.Context, prompt domain.ExtensionPrompt) *domain.ActivityTemplate {
	templates, err := o.store.List(ctx, &prompt.PetID)
	if err != nil {
		slog.DebugContext(ctx, "could not fetch original template, using prompt fields",
			slog.Int64("template_id", prompt.TemplateID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	for i := range templates {
		if templates[i].ID == prompt.TemplateID {
			return &templates[i]
		}
	}
	return nil
}

func toErrors(msgs []string) []error {
	errs := make([]error, 0, len(msgs))
	for _, msg := range msgs {
		errs = append(errs, errors.New(msg))
	}
	return errs
}
