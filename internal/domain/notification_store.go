package domain

import "context"

//go:generate mockgen -source=notification_store.go -destination=notification_store_mock.go -package=domain

// NotificationStore is the durable device-scoped mapping from template id
// to its live notification handle. One entry per template with an active
// schedule.
type NotificationStore interface {
	Save(ctx context.Context, deviceID string, record NotificationRecord) error
	Get(ctx context.Context, deviceID string, templateID int64) (*NotificationRecord, error)
	Delete(ctx context.Context, deviceID string, templateID int64) error
	List(ctx context.Context, deviceID string) ([]NotificationRecord, error)
}
