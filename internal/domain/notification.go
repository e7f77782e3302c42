package domain

import "time"

// NotificationClass partitions device notifications into disjoint groups.
// Cancel-all-for-template must never touch the extension-reminder class.
type NotificationClass string

const (
	ClassActivityReminder  NotificationClass = "activity-reminder"
	ClassExtensionReminder NotificationClass = "repeat-extension"
)

// NotificationData is the metadata embedded in every scheduled device
// notification, used to attribute it back to a template.
type NotificationData struct {
	Type             NotificationClass `json:"type"`
	TemplateID       int64             `json:"template_id"`
	PetID            int64             `json:"pet_id"`
	Category         Category          `json:"category"`
	OriginalRepeat   RepeatUnit        `json:"original_repeat,omitempty"`
	OriginalInterval int               `json:"original_interval,omitempty"`
}

// NotificationContent is what the device renders when a trigger fires.
type NotificationContent struct {
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Sound string           `json:"sound"`
	Data  NotificationData `json:"data"`
}

// TriggerType selects the native device scheduling primitive.
type TriggerType string

const (
	TriggerOneShot TriggerType = "date"
	TriggerDaily   TriggerType = "daily"
	TriggerWeekly  TriggerType = "weekly"
)

// Trigger describes when a notification fires. One-shot triggers carry the
// exact instant; daily/weekly triggers carry wall-clock fields only.
type Trigger struct {
	Type    TriggerType  `json:"type"`
	At      time.Time    `json:"at,omitempty"`
	Weekday time.Weekday `json:"weekday,omitempty"`
	Hour    int          `json:"hour"`
	Minute  int          `json:"minute"`
}

func OneShotTrigger(at time.Time) Trigger {
	return Trigger{Type: TriggerOneShot, At: at}
}

func DailyTrigger(hour, minute int) Trigger {
	return Trigger{Type: TriggerDaily, Hour: hour, Minute: minute}
}

func WeeklyTrigger(weekday time.Weekday, hour, minute int) Trigger {
	return Trigger{Type: TriggerWeekly, Weekday: weekday, Hour: hour, Minute: minute}
}

// NotificationRecord maps a template to its live device schedule. At most
// one record exists per template.
type NotificationRecord struct {
	TemplateID  int64     `json:"template_id"`
	Handle      string    `json:"handle"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScheduledNotification is one entry of the device's pending schedule list.
type ScheduledNotification struct {
	Handle  string              `json:"handle"`
	Content NotificationContent `json:"content"`
}
