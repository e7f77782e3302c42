package domain

import "time"

// RepeatKind is the unit of a recurrence rule.
type RepeatKind string

const (
	RepeatNone  RepeatKind = "none"
	RepeatDay   RepeatKind = "day"
	RepeatWeek  RepeatKind = "week"
	RepeatMonth RepeatKind = "month"
	RepeatYear  RepeatKind = "year"
)

func (k RepeatKind) String() string {
	return string(k)
}

// BoundMode selects how a recurring series terminates. Exactly one mode is
// active per rule.
type BoundMode string

const (
	BoundDefaultHorizon BoundMode = "default_horizon"
	BoundCount          BoundMode = "count"
	BoundEndDate        BoundMode = "end_date"
)

// Bound is the termination mode of a recurrence rule.
type Bound struct {
	Mode  BoundMode
	Count int
	End   time.Time
}

func DefaultHorizonBound() Bound {
	return Bound{Mode: BoundDefaultHorizon}
}

func CountBound(n int) Bound {
	return Bound{Mode: BoundCount, Count: n}
}

func EndDateBound(end time.Time) Bound {
	return Bound{Mode: BoundEndDate, End: end}
}

// RepeatRule is the recurrence rule of an activity template, normalized
// from the store's loose optional fields into a tagged variant.
type RepeatRule struct {
	Kind     RepeatKind
	Interval int
	Bound    Bound
}

// NoRepeat is the rule for one-off activities.
func NoRepeat() RepeatRule {
	return RepeatRule{Kind: RepeatNone}
}

// NewRepeatRule builds a rule from the store's field set. A positive count
// takes precedence over an end date; with neither, the default generation
// horizon applies. A non-positive interval is normalized to 1.
func NewRepeatRule(kind RepeatKind, interval int, endDate *time.Time, count int) RepeatRule {
	if kind == RepeatNone || kind == "" {
		return NoRepeat()
	}
	if interval <= 0 {
		interval = 1
	}

	bound := DefaultHorizonBound()
	switch {
	case count > 0:
		bound = CountBound(count)
	case endDate != nil && !endDate.IsZero():
		bound = EndDateBound(*endDate)
	}

	return RepeatRule{
		Kind:     kind,
		Interval: interval,
		Bound:    bound,
	}
}

// IsRepeating reports whether the rule produces occurrences beyond the
// template's own instant.
func (r RepeatRule) IsRepeating() bool {
	return r.Kind != RepeatNone && r.Kind != ""
}

// IsSimple reports whether the rule uses a plain single-unit interval.
// Extension reminders are only armed for simple rules.
func (r RepeatRule) IsSimple() bool {
	return r.IsRepeating() && r.Interval == 1
}
