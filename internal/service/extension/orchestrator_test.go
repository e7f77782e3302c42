package extension

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/infra/activitystore"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/service/notify"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
)

type orchestratorMocks struct {
	store     *activitystore.MockActivityStore
	pets      *activitystore.MockPetDirectory
	prompts   *domain.MockPromptStore
	scheduler *notify.MockScheduler
	planner   *MockPlanner
}

func newTestOrchestrator(t *testing.T) (Orchestrator, orchestratorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orchestratorMocks{
		store:     activitystore.NewMockActivityStore(ctrl),
		pets:      activitystore.NewMockPetDirectory(ctrl),
		prompts:   domain.NewMockPromptStore(ctrl),
		scheduler: notify.NewMockScheduler(ctrl),
		planner:   NewMockPlanner(ctrl),
	}
	o := NewOrchestrator(
		m.store,
		m.pets,
		m.prompts,
		recurrence.NewExpander(),
		m.scheduler,
		m.planner,
		localtime.NewCodec(time.UTC),
		domain.FixedClock{T: time.Date(2024, time.January, 9, 12, 0, 0, 0, time.UTC)},
		nil,
	)
	return o, m
}

func dailyPrompt() domain.ExtensionPrompt {
	return domain.ExtensionPrompt{
		TemplateID:    1,
		TemplateTitle: "Breakfast",
		RepeatUnit:    domain.UnitDaily,
		Interval:      1,
		PetID:         9,
		Category:      domain.CategoryFeeding,
		ScheduledDate: time.Date(2024, time.January, 9, 10, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAcceptCreatesContinuationSeries(t *testing.T) {
	o, m := newTestOrchestrator(t)
	prompt := dailyPrompt()

	m.pets.EXPECT().ListPets(gomock.Any()).Return([]activitystore.Pet{{ID: 9, Name: "Mochi"}}, nil)
	m.store.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ActivityTemplate{
		{ID: 1, PetID: 9, Notes: "half portion", FoodType: "kibble"},
	}, nil)

	nextID := int64(100)
	var createdDates []string
	m.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(7).DoAndReturn(
		func(_ context.Context, input activitystore.CreateActivityInput) (*domain.ActivityTemplate, error) {
			if input.RepeatType != "none" {
				t.Errorf("continuation repeat type = %q, want none", input.RepeatType)
			}
			if !input.Notify {
				t.Error("continuation notify = false, want true")
			}
			if input.Notes != "half portion" || input.FoodType != "kibble" {
				t.Errorf("original fields not inherited: %+v", input)
			}
			createdDates = append(createdDates, input.Date)
			nextID++
			return &domain.ActivityTemplate{
				ID:       nextID,
				PetID:    input.PetID,
				Category: domain.Category(input.Category),
				Title:    input.Title,
				Date:     input.Date,
				Time:     input.Time,
				Notify:   true,
				Repeat:   domain.NoRepeat(),
			}, nil
		})

	m.scheduler.EXPECT().Schedule(gomock.Any(), "device-1", gomock.Any(), "Mochi").Times(7).Return("handle", nil)

	var anchor domain.ActivityTemplate
	m.planner.EXPECT().Plan(gomock.Any(), "device-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, template domain.ActivityTemplate) (string, error) {
			anchor = template
			return "reminder-2", nil
		})

	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), prompt.ScheduledDate).Return(nil)

	result, err := o.Accept(context.Background(), "device-1", prompt)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	if len(result.CreatedTemplates) != 7 {
		t.Fatalf("created %d templates, want 7", len(result.CreatedTemplates))
	}
	if result.ScheduledCount != 7 {
		t.Errorf("scheduled %d notifications, want 7", result.ScheduledCount)
	}
	if result.ReminderHandle != "reminder-2" {
		t.Errorf("reminder handle = %q, want reminder-2", result.ReminderHandle)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want none", result.Errors)
	}

	// Continuation dates step daily from the prompt's scheduled date.
	if createdDates[0] != "2024-01-10T10:00:00" {
		t.Errorf("first continuation date = %q, want 2024-01-10T10:00:00", createdDates[0])
	}
	if createdDates[6] != "2024-01-16T10:00:00" {
		t.Errorf("last continuation date = %q, want 2024-01-16T10:00:00", createdDates[6])
	}

	// The re-arm anchor is the last created template carrying the simple
	// daily rule.
	if anchor.ID != 107 {
		t.Errorf("anchor id = %d, want 107", anchor.ID)
	}
	if anchor.Repeat.Kind != domain.RepeatDay || anchor.Repeat.Interval != 1 {
		t.Errorf("anchor rule = %+v, want simple daily", anchor.Repeat)
	}
}

func TestAcceptFailsWhenPetMissing(t *testing.T) {
	o, m := newTestOrchestrator(t)
	prompt := dailyPrompt()

	m.pets.EXPECT().ListPets(gomock.Any()).Return([]activitystore.Pet{{ID: 2, Name: "Other"}}, nil)
	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), prompt.ScheduledDate).Return(nil)

	_, err := o.Accept(context.Background(), "device-1", prompt)
	if !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("Accept() error = %v, want ErrPetNotFound", err)
	}
}

func TestAcceptPartialCreateFailureIsSuccess(t *testing.T) {
	o, m := newTestOrchestrator(t)
	prompt := dailyPrompt()

	m.pets.EXPECT().ListPets(gomock.Any()).Return([]activitystore.Pet{{ID: 9, Name: "Mochi"}}, nil)
	m.store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("store unavailable"))

	call := 0
	m.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(7).DoAndReturn(
		func(_ context.Context, input activitystore.CreateActivityInput) (*domain.ActivityTemplate, error) {
			call++
			if call == 3 {
				return nil, errors.New("transient store error")
			}
			return &domain.ActivityTemplate{ID: int64(100 + call), PetID: input.PetID, Date: input.Date, Time: input.Time, Notify: true}, nil
		})

	m.scheduler.EXPECT().Schedule(gomock.Any(), "device-1", gomock.Any(), "Mochi").Times(6).Return("handle", nil)
	m.planner.EXPECT().Plan(gomock.Any(), "device-1", gomock.Any()).Return("", nil)
	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), prompt.ScheduledDate).Return(nil)

	result, err := o.Accept(context.Background(), "device-1", prompt)
	if err != nil {
		t.Fatalf("Accept() error = %v, want success with error list", err)
	}
	if len(result.CreatedTemplates) != 6 {
		t.Errorf("created %d templates, want 6", len(result.CreatedTemplates))
	}
	if len(result.Errors) != 1 {
		t.Errorf("errors = %v, want exactly one", result.Errors)
	}
}

func TestAcceptAllCreatesFailedIsFailure(t *testing.T) {
	o, m := newTestOrchestrator(t)
	prompt := dailyPrompt()

	m.pets.EXPECT().ListPets(gomock.Any()).Return([]activitystore.Pet{{ID: 9, Name: "Mochi"}}, nil)
	m.store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(7).Return(nil, errors.New("store down"))
	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), prompt.ScheduledDate).Return(nil)

	_, err := o.Accept(context.Background(), "device-1", prompt)
	if !errors.Is(err, domain.ErrNothingExtended) {
		t.Fatalf("Accept() error = %v, want ErrNothingExtended", err)
	}
}

func TestAcceptProceedsWithoutOriginalTemplate(t *testing.T) {
	o, m := newTestOrchestrator(t)
	prompt := dailyPrompt()

	m.pets.EXPECT().ListPets(gomock.Any()).Return([]activitystore.Pet{{ID: 9, Name: "Mochi"}}, nil)
	// Original template deleted; the list comes back without it.
	m.store.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.ActivityTemplate{}, nil)

	m.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(7).DoAndReturn(
		func(_ context.Context, input activitystore.CreateActivityInput) (*domain.ActivityTemplate, error) {
			if input.Title != "Breakfast" || input.Category != "FEEDING" {
				t.Errorf("prompt fields not used: %+v", input)
			}
			return &domain.ActivityTemplate{ID: 200, PetID: input.PetID, Date: input.Date, Time: input.Time, Notify: true}, nil
		})
	m.scheduler.EXPECT().Schedule(gomock.Any(), "device-1", gomock.Any(), "Mochi").Times(7).Return("handle", nil)
	m.planner.EXPECT().Plan(gomock.Any(), "device-1", gomock.Any()).Return("", nil)
	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), prompt.ScheduledDate).Return(nil)

	result, err := o.Accept(context.Background(), "device-1", prompt)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if len(result.CreatedTemplates) != 7 {
		t.Errorf("created %d templates, want 7", len(result.CreatedTemplates))
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	o, m := newTestOrchestrator(t)
	scheduledDate := time.Date(2024, time.January, 9, 10, 0, 0, 0, time.UTC)

	// The queue's remove is a no-op when the prompt is already gone, so
	// a duplicate dismiss behaves identically.
	m.prompts.EXPECT().Remove(gomock.Any(), "device-1", int64(1), scheduledDate).Times(2).Return(nil)

	if err := o.Dismiss(context.Background(), "device-1", 1, scheduledDate); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if err := o.Dismiss(context.Background(), "device-1", 1, scheduledDate); err != nil {
		t.Fatalf("second Dismiss() error = %v", err)
	}
}
