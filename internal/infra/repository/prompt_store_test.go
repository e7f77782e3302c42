package repository

import (
	"context"
	"testing"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/testutil"
)

func testPrompt(templateID int64, scheduledDate, createdAt time.Time) domain.ExtensionPrompt {
	return domain.ExtensionPrompt{
		TemplateID:    templateID,
		TemplateTitle: "Breakfast",
		RepeatUnit:    domain.UnitDaily,
		Interval:      1,
		PetID:         9,
		Category:      domain.CategoryFeeding,
		ScheduledDate: scheduledDate,
		CreatedAt:     createdAt,
	}
}

func TestPromptStorePendingSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prompts  []domain.ExtensionPrompt
		expected []int64
	}{
		{
			name:     "empty queue returns nothing",
			prompts:  nil,
			expected: []int64{},
		},
		{
			name: "due prompts only, ordered by scheduled date",
			prompts: []domain.ExtensionPrompt{
				testPrompt(2, now.Add(-time.Hour), now.Add(-24*time.Hour)),
				testPrompt(1, now.Add(-48*time.Hour), now.Add(-72*time.Hour)),
				testPrompt(3, now.Add(24*time.Hour), now.Add(-time.Hour)),
			},
			expected: []int64{1, 2},
		},
		{
			name: "stale prompts past retention are dropped",
			prompts: []domain.ExtensionPrompt{
				testPrompt(4, now.Add(-40*24*time.Hour), now.Add(-40*24*time.Hour)),
				testPrompt(5, now.Add(-time.Hour), now.Add(-time.Hour)),
			},
			expected: []int64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ResetRedis(ctx, t, client)

			for _, p := range tt.prompts {
				if err := store.Enqueue(ctx, "device-1", p); err != nil {
					t.Fatalf("failed to enqueue prompt: %v", err)
				}
			}

			pending, err := store.Pending(ctx, "device-1", now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(pending) != len(tt.expected) {
				t.Fatalf("expected %d prompts, got %d", len(tt.expected), len(pending))
			}
			for i, id := range tt.expected {
				if pending[i].TemplateID != id {
					t.Errorf("position %d: expected template %d, got %d", i, id, pending[i].TemplateID)
				}
			}
		})
	}
}

func TestPromptStoreEnqueueRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	prompt := testPrompt(7, now.Add(-time.Hour), now.Add(-2*time.Hour))

	if err := store.Enqueue(ctx, "device-1", prompt); err != nil {
		t.Fatalf("failed to enqueue prompt: %v", err)
	}

	pending, err := store.Pending(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(pending))
	}

	got := pending[0]
	if got.TemplateID != prompt.TemplateID {
		t.Errorf("expected TemplateID %d, got %d", prompt.TemplateID, got.TemplateID)
	}
	if got.TemplateTitle != prompt.TemplateTitle {
		t.Errorf("expected TemplateTitle %s, got %s", prompt.TemplateTitle, got.TemplateTitle)
	}
	if got.RepeatUnit != prompt.RepeatUnit {
		t.Errorf("expected RepeatUnit %s, got %s", prompt.RepeatUnit, got.RepeatUnit)
	}
	if got.Category != prompt.Category {
		t.Errorf("expected Category %s, got %s", prompt.Category, got.Category)
	}
	if !got.ScheduledDate.Equal(prompt.ScheduledDate) {
		t.Errorf("expected ScheduledDate %v, got %v", prompt.ScheduledDate, got.ScheduledDate)
	}

	// Re-enqueueing the same (template, date) pair overwrites, not
	// duplicates.
	if err := store.Enqueue(ctx, "device-1", prompt); err != nil {
		t.Fatalf("failed to re-enqueue prompt: %v", err)
	}
	pending, err = store.Pending(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected 1 prompt after re-enqueue, got %d", len(pending))
	}
}

func TestPromptStoreQueuesAreDeviceScoped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	if err := store.Enqueue(ctx, "device-1", testPrompt(1, now.Add(-time.Hour), now.Add(-time.Hour))); err != nil {
		t.Fatalf("failed to enqueue prompt: %v", err)
	}

	pending, err := store.Pending(ctx, "device-2", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected empty queue for other device, got %d prompts", len(pending))
	}
}

func TestPromptStoreRemove(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	date := now.Add(-time.Hour)

	if err := store.Enqueue(ctx, "device-1", testPrompt(1, date, now.Add(-time.Hour))); err != nil {
		t.Fatalf("failed to enqueue prompt: %v", err)
	}

	if err := store.Remove(ctx, "device-1", 1, date); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := store.Pending(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected empty queue after remove, got %d prompts", len(pending))
	}

	// Removing an absent prompt is a no-op.
	if err := store.Remove(ctx, "device-1", 1, date); err != nil {
		t.Errorf("expected no error removing absent prompt, got %v", err)
	}
}

func TestPromptStoreRemoveAllForTemplate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	prompts := []domain.ExtensionPrompt{
		testPrompt(1, now.Add(-2*time.Hour), now.Add(-time.Hour)),
		testPrompt(1, now.Add(-time.Hour), now.Add(-time.Hour)),
		testPrompt(2, now.Add(-time.Hour), now.Add(-time.Hour)),
	}
	for _, p := range prompts {
		if err := store.Enqueue(ctx, "device-1", p); err != nil {
			t.Fatalf("failed to enqueue prompt: %v", err)
		}
	}

	if err := store.RemoveAllForTemplate(ctx, "device-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := store.Pending(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 surviving prompt, got %d", len(pending))
	}
	if pending[0].TemplateID != 2 {
		t.Errorf("expected surviving template 2, got %d", pending[0].TemplateID)
	}
}

func TestPromptStoreCleanupExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewPromptStore(client)

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	prompts := []domain.ExtensionPrompt{
		testPrompt(1, now.Add(-40*24*time.Hour), now.Add(-40*24*time.Hour)),
		testPrompt(2, now.Add(-35*24*time.Hour), now.Add(-35*24*time.Hour)),
		testPrompt(3, now.Add(-time.Hour), now.Add(-time.Hour)),
	}
	for _, p := range prompts {
		if err := store.Enqueue(ctx, "device-1", p); err != nil {
			t.Fatalf("failed to enqueue prompt: %v", err)
		}
	}

	removed, err := store.CleanupExpired(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed prompts, got %d", removed)
	}

	pending, err := store.Pending(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 surviving prompt, got %d", len(pending))
	}
	if pending[0].TemplateID != 3 {
		t.Errorf("expected surviving template 3, got %d", pending[0].TemplateID)
	}

	// A second sweep finds nothing.
	removed, err = store.CleanupExpired(ctx, "device-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed on second sweep, got %d", removed)
	}
}
