// Package recurrence expands repeat rules into concrete occurrence instants.
package recurrence

import (
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
)

// Default number of generated occurrences per unit when a rule carries
// neither a count nor an end date.
const (
	defaultDayOccurrences   = 7
	defaultWeekOccurrences  = 4
	defaultMonthOccurrences = 3
	defaultYearOccurrences  = 1
)

// Approximate days per unit, used only to size the candidate loop when an
// end date bounds the series. Every candidate is rechecked against the
// true end date before it is emitted.
const (
	approxDaysPerMonth = 30
	approxDaysPerYear  = 365
)

type Expander interface {
	// Expand returns the occurrence instants implied by rule after start,
	// strictly ascending and finite. The start instant itself is never
	// included.
	Expand(start time.Time, rule domain.RepeatRule) []time.Time
}

type expanderImpl struct{}

func NewExpander() Expander {
	return &expanderImpl{}
}

func (e *expanderImpl) Expand(start time.Time, rule domain.RepeatRule) []time.Time {
	if !rule.IsRepeating() {
		return nil
	}

	interval := rule.Interval
	if interval <= 0 {
		interval = 1
	}

	var (
		limit    int
		end      time.Time
		checkEnd bool
	)

	switch rule.Bound.Mode {
	case domain.BoundCount:
		limit = rule.Bound.Count
	case domain.BoundEndDate:
		end = endOfDay(rule.Bound.End)
		checkEnd = true
		limit = estimateOccurrences(start, end, rule.Kind, interval)
	default:
		limit = defaultOccurrences(rule.Kind)
	}

	if limit <= 0 {
		return nil
	}

	occurrences := make([]time.Time, 0, limit)
	for k := 1; k <= limit; k++ {
		candidate := step(start, rule.Kind, interval*k)
		if checkEnd && candidate.After(end) {
			break
		}
		occurrences = append(occurrences, candidate)
	}

	return occurrences
}

// step advances start by n units using calendar arithmetic. Month and year
// steps may shift the day-of-month at short-month boundaries; that shift is
// accepted, not normalized.
func step(start time.Time, kind domain.RepeatKind, n int) time.Time {
	switch kind {
	case domain.RepeatDay:
		return start.AddDate(0, 0, n)
	case domain.RepeatWeek:
		return start.AddDate(0, 0, 7*n)
	case domain.RepeatMonth:
		return start.AddDate(0, n, 0)
	case domain.RepeatYear:
		return start.AddDate(n, 0, 0)
	default:
		return start
	}
}

func defaultOccurrences(kind domain.RepeatKind) int {
	switch kind {
	case domain.RepeatDay:
		return defaultDayOccurrences
	case domain.RepeatWeek:
		return defaultWeekOccurrences
	case domain.RepeatMonth:
		return defaultMonthOccurrences
	case domain.RepeatYear:
		return defaultYearOccurrences
	default:
		return 0
	}
}

// estimateOccurrences sizes the generation loop for an end-date bound.
// Months and years use fixed approximate lengths, so the estimate can
// overshoot by a step; the per-candidate end check absorbs that.
func estimateOccurrences(start, end time.Time, kind domain.RepeatKind, interval int) int {
	if !end.After(start) {
		return 0
	}

	days := end.Sub(start).Hours() / 24

	var unitDays float64
	switch kind {
	case domain.RepeatDay:
		unitDays = 1
	case domain.RepeatWeek:
		unitDays = 7
	case domain.RepeatMonth:
		unitDays = approxDaysPerMonth
	case domain.RepeatYear:
		unitDays = approxDaysPerYear
	default:
		return 0
	}

	return int(days/(unitDays*float64(interval))) + 1
}

// endOfDay widens a date-only bound so occurrences on the end date itself
// are kept.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}
