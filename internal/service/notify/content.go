package notify

import (
	"fmt"

	"github.com/vetly/activity-scheduling/internal/domain"
)

const defaultSound = "default"

// buildContent renders the notification the device shows for one occurrence.
// The body wording is category-specific; notes ride along when present.
func buildContent(occ domain.VirtualOccurrence, petName string) domain.NotificationContent {
	body := categoryBody(occ.Category, petName)
	if occ.Notes != "" {
		body = fmt.Sprintf("%s\n%s", body, occ.Notes)
	}

	unit, _ := domain.UnitForKind(occ.Repeat.Kind)

	return domain.NotificationContent{
		Title: occ.Title,
		Body:  body,
		Sound: defaultSound,
		Data: domain.NotificationData{
			Type:             domain.ClassActivityReminder,
			TemplateID:       occ.SourceTemplateID(),
			PetID:            occ.PetID,
			Category:         occ.Category,
			OriginalRepeat:   unit,
			OriginalInterval: occ.Repeat.Interval,
		},
	}
}

func categoryBody(category domain.Category, petName string) string {
	switch category {
	case domain.CategoryFeeding:
		return fmt.Sprintf("Time to feed %s", petName)
	case domain.CategoryCare:
		return fmt.Sprintf("%s is due for some care", petName)
	case domain.CategoryActivity:
		return fmt.Sprintf("Time for %s's activity", petName)
	default:
		return fmt.Sprintf("Reminder for %s", petName)
	}
}

// selectTrigger picks the native repeat primitive for a rule. Plain daily
// and weekly rules map to the device's repeating triggers; everything else
// is a one-shot at the occurrence instant, and callers re-arm subsequent
// occurrences themselves.
func selectTrigger(rule domain.RepeatRule, occ occurrenceInstant) domain.Trigger {
	if rule.Interval == 1 {
		switch rule.Kind {
		case domain.RepeatDay:
			return domain.DailyTrigger(occ.hour, occ.minute)
		case domain.RepeatWeek:
			return domain.WeeklyTrigger(occ.weekday, occ.hour, occ.minute)
		}
	}
	return domain.OneShotTrigger(occ.at)
}
