// Package devicegw talks to the push-delivery layer that materializes
// device-local notifications. The local build registers schedules over the
// delivery gateway's HTTP API; the gcloud build routes them through Google
// Cloud Tasks instead.
package devicegw

import (
	"context"

	"github.com/vetly/activity-scheduling/internal/domain"
)

//go:generate mockgen -source=gateway.go -destination=mock.go -package=devicegw

type DeviceNotifications interface {
	// Schedule registers a notification for the device and returns the
	// delivery handle.
	Schedule(ctx context.Context, deviceID string, content domain.NotificationContent, trigger domain.Trigger) (string, error)

	// Cancel removes a scheduled notification. Cancelling an unknown
	// handle is not an error.
	Cancel(ctx context.Context, deviceID, handle string) error

	// ListScheduled returns every pending notification for the device.
	ListScheduled(ctx context.Context, deviceID string) ([]domain.ScheduledNotification, error)

	// HasPermission reports whether the device has granted notification
	// permission.
	HasPermission(ctx context.Context, deviceID string) (bool, error)
}
