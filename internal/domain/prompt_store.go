package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=prompt_store.go -destination=prompt_store_mock.go -package=domain

// PromptStore is the durable device-scoped queue of pending extension
// prompts. Entries are keyed by (template id, scheduled date) and are an
// optimization only: losing them (reinstall, data reset) is acceptable.
type PromptStore interface {
	Enqueue(ctx context.Context, deviceID string, prompt ExtensionPrompt) error
	Pending(ctx context.Context, deviceID string, now time.Time) ([]ExtensionPrompt, error)
	Remove(ctx context.Context, deviceID string, templateID int64, scheduledDate time.Time) error
	RemoveAllForTemplate(ctx context.Context, deviceID string, templateID int64) error
	CleanupExpired(ctx context.Context, deviceID string, now time.Time) (int, error)
}
