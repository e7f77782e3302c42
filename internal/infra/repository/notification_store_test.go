package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/testutil"
)

func testRecord(templateID int64, handle string, scheduledAt time.Time) domain.NotificationRecord {
	return domain.NotificationRecord{
		TemplateID:  templateID,
		Handle:      handle,
		ScheduledAt: scheduledAt,
		CreatedAt:   scheduledAt.Add(-time.Hour),
	}
}

func TestNotificationStoreSaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewNotificationStore(client)

	at := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	record := testRecord(1, "handle-001", at)

	if err := store.Save(ctx, "device-1", record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "device-1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Handle != record.Handle {
		t.Errorf("expected handle %s, got %s", record.Handle, got.Handle)
	}
	if !got.ScheduledAt.Equal(record.ScheduledAt) {
		t.Errorf("expected ScheduledAt %v, got %v", record.ScheduledAt, got.ScheduledAt)
	}

	// One record per template: a second save replaces the first.
	replacement := testRecord(1, "handle-002", at.Add(24*time.Hour))
	if err := store.Save(ctx, "device-1", replacement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = store.Get(ctx, "device-1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Handle != "handle-002" {
		t.Errorf("expected replacement handle, got %s", got.Handle)
	}

	records, err := store.List(ctx, "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after replacement, got %d", len(records))
	}
}

func TestNotificationStoreGetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewNotificationStore(client)

	_, err := store.Get(ctx, "device-1", 99)
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestNotificationStoreDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewNotificationStore(client)

	at := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, "device-1", testRecord(1, "handle-001", at)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(ctx, "device-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, "device-1", 1); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}

	// Deleting an absent record is a no-op.
	if err := store.Delete(ctx, "device-1", 1); err != nil {
		t.Errorf("expected no error deleting absent record, got %v", err)
	}
}

func TestNotificationStoreListOrderedByTemplate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.StartRedis(ctx, t)
	store := NewNotificationStore(client)

	at := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	for _, id := range []int64{3, 1, 2} {
		if err := store.Save(ctx, "device-1", testRecord(id, "handle", at)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Another device's records stay invisible.
	if err := store.Save(ctx, "device-2", testRecord(9, "other", at)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := store.List(ctx, "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []int64{1, 2, 3} {
		if records[i].TemplateID != want {
			t.Errorf("position %d: expected template %d, got %d", i, want, records[i].TemplateID)
		}
	}
}
