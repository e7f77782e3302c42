package domain

import (
	"fmt"
	"time"
)

// RepeatUnit is the simplified repeat descriptor carried by extension
// prompts and extension-reminder notifications. It is distinct from
// RepeatKind: prompts only exist for simple single-unit rules.
type RepeatUnit string

const (
	UnitDaily   RepeatUnit = "daily"
	UnitWeekly  RepeatUnit = "weekly"
	UnitMonthly RepeatUnit = "monthly"
	UnitYearly  RepeatUnit = "yearly"
)

func (u RepeatUnit) String() string {
	return string(u)
}

// UnitForKind maps a recurrence unit to its prompt descriptor. The second
// result is false for non-repeating kinds.
func UnitForKind(kind RepeatKind) (RepeatUnit, bool) {
	switch kind {
	case RepeatDay:
		return UnitDaily, true
	case RepeatWeek:
		return UnitWeekly, true
	case RepeatMonth:
		return UnitMonthly, true
	case RepeatYear:
		return UnitYearly, true
	default:
		return "", false
	}
}

// KindForUnit is the inverse of UnitForKind.
func KindForUnit(unit RepeatUnit) (RepeatKind, bool) {
	switch unit {
	case UnitDaily:
		return RepeatDay, true
	case UnitWeekly:
		return RepeatWeek, true
	case UnitMonthly:
		return RepeatMonth, true
	case UnitYearly:
		return RepeatYear, true
	default:
		return "", false
	}
}

// ExtensionPrompt is a pending "extend this series?" question, stored
// device-side until its scheduled date arrives and the user answers. The
// prompt caches enough template fields to survive deletion of the template
// itself.
type ExtensionPrompt struct {
	TemplateID    int64      `json:"template_id"`
	TemplateTitle string     `json:"template_title"`
	RepeatUnit    RepeatUnit `json:"repeat_unit"`
	Interval      int        `json:"interval"`
	PetID         int64      `json:"pet_id"`
	Category      Category   `json:"category"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Key returns the queue key for this prompt.
func (p ExtensionPrompt) Key() string {
	return PromptKey(p.TemplateID, p.ScheduledDate)
}

// PromptKey builds the queue key for a (template, scheduled date) pair.
func PromptKey(templateID int64, scheduledDate time.Time) string {
	return fmt.Sprintf("%d_%s", templateID, scheduledDate.Format(time.RFC3339))
}

// Due reports whether the prompt is eligible to be shown at now.
func (p ExtensionPrompt) Due(now time.Time) bool {
	return !p.ScheduledDate.After(now)
}
