package devicegw

import (
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
)

type PushScheduleRequest struct {
	Content domain.NotificationContent `json:"content"`
	Trigger PushTrigger                `json:"trigger"`
}

type PushTrigger struct {
	Type    string `json:"type"`
	At      string `json:"at,omitempty"` // RFC3339, one-shot only
	Weekday int    `json:"weekday,omitempty"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

type PushScheduleResponse struct {
	Handle string `json:"handle"`
}

type PushListResponse struct {
	Notifications []PushScheduledItem `json:"notifications"`
}

type PushScheduledItem struct {
	Handle  string                     `json:"handle"`
	Content domain.NotificationContent `json:"content"`
}

type PushPermissionResponse struct {
	Granted bool `json:"granted"`
}

func encodeTrigger(t domain.Trigger) PushTrigger {
	p := PushTrigger{
		Type:   string(t.Type),
		Hour:   t.Hour,
		Minute: t.Minute,
	}
	switch t.Type {
	case domain.TriggerOneShot:
		p.At = t.At.Format(time.RFC3339)
	case domain.TriggerWeekly:
		p.Weekday = int(t.Weekday)
	}
	return p
}

// TaskPayload is the body attached to a Cloud Tasks task in the gcloud
// build. The delivery worker decodes it to drive the device schedule.
type TaskPayload struct {
	DeviceID string                     `json:"device_id"`
	Handle   string                     `json:"handle"`
	Content  domain.NotificationContent `json:"content"`
	Trigger  PushTrigger                `json:"trigger"`
}
