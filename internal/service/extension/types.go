package extension

import "github.com/vetly/activity-scheduling/internal/domain"

// AcceptResult reports one extension run. Partial failures are success:
// the operation fails only when no continuation template was created at
// all.
type AcceptResult struct {
	CreatedTemplates []domain.ActivityTemplate
	ScheduledCount   int
	ReminderHandle   string
	Errors           []string
}
