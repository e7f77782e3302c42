package recurrence

import (
	"testing"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return parsed
}

func TestExpandDailyCountCap(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatDay,
		Interval: 1,
		Bound:    domain.CountBound(3),
	})

	want := []time.Time{
		mustParse(t, "2024-01-02T08:00:00"),
		mustParse(t, "2024-01-03T08:00:00"),
		mustParse(t, "2024-01-04T08:00:00"),
	}

	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandWeeklyWithEndDate(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatWeek,
		Interval: 2,
		Bound:    domain.EndDateBound(end),
	})

	want := []time.Time{
		mustParse(t, "2024-01-15T08:00:00"),
		mustParse(t, "2024-01-29T08:00:00"),
	}

	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d occurrences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandOccurrenceOnEndDateKept(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")
	end := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatWeek,
		Interval: 1,
		Bound:    domain.EndDateBound(end),
	})

	if len(got) != 1 {
		t.Fatalf("Expand() returned %d occurrences, want 1: %v", len(got), got)
	}
	if want := mustParse(t, "2024-01-08T08:00:00"); !got[0].Equal(want) {
		t.Errorf("occurrence[0] = %v, want %v", got[0], want)
	}
}

func TestExpandNoneIsEmpty(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")

	if got := exp.Expand(start, domain.NoRepeat()); len(got) != 0 {
		t.Errorf("Expand(none) = %v, want empty", got)
	}
}

func TestExpandDefaultHorizons(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")

	tests := []struct {
		name string
		kind domain.RepeatKind
		want int
	}{
		{name: "day", kind: domain.RepeatDay, want: 7},
		{name: "week", kind: domain.RepeatWeek, want: 4},
		{name: "month", kind: domain.RepeatMonth, want: 3},
		{name: "year", kind: domain.RepeatYear, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exp.Expand(start, domain.RepeatRule{
				Kind:     tt.kind,
				Interval: 1,
				Bound:    domain.DefaultHorizonBound(),
			})
			if len(got) != tt.want {
				t.Errorf("Expand(%s) returned %d occurrences, want %d", tt.kind, len(got), tt.want)
			}
		})
	}
}

func TestExpandStrictlyAscendingAndEvenlySpaced(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-03-10T06:30:00")

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatDay,
		Interval: 3,
		Bound:    domain.CountBound(5),
	})

	if len(got) != 5 {
		t.Fatalf("Expand() returned %d occurrences, want 5", len(got))
	}

	prev := start
	for i, occ := range got {
		if !occ.After(prev) {
			t.Errorf("occurrence[%d] = %v, not after %v", i, occ, prev)
		}
		if want := prev.AddDate(0, 0, 3); !occ.Equal(want) {
			t.Errorf("occurrence[%d] = %v, want %v", i, occ, want)
		}
		prev = occ
	}
}

func TestExpandNonPositiveIntervalTreatedAsOne(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-01T08:00:00")

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatDay,
		Interval: 0,
		Bound:    domain.CountBound(2),
	})

	want := []time.Time{
		mustParse(t, "2024-01-02T08:00:00"),
		mustParse(t, "2024-01-03T08:00:00"),
	}
	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d occurrences, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandMonthEndRollover(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-01-31T09:00:00")

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatMonth,
		Interval: 1,
		Bound:    domain.CountBound(1),
	})

	if len(got) != 1 {
		t.Fatalf("Expand() returned %d occurrences, want 1", len(got))
	}
	// Jan 31 + 1 month rolls over to Mar 2 in a leap year; the shift is
	// accepted calendar behavior.
	if want := mustParse(t, "2024-03-02T09:00:00"); !got[0].Equal(want) {
		t.Errorf("occurrence[0] = %v, want %v", got[0], want)
	}
}

func TestExpandEndDateBeforeStart(t *testing.T) {
	exp := NewExpander()
	start := mustParse(t, "2024-06-01T08:00:00")
	end := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatDay,
		Interval: 1,
		Bound:    domain.EndDateBound(end),
	})

	if len(got) != 0 {
		t.Errorf("Expand() with past end date = %v, want empty", got)
	}
}

func TestExpandMonthlyEndDateRecheckedAgainstTrueEnd(t *testing.T) {
	exp := NewExpander()
	// Five 31-day months overshoot the 30-day-per-month estimate; the
	// per-candidate check must still drop anything past the end date.
	start := mustParse(t, "2024-05-15T08:00:00")
	end := time.Date(2024, time.August, 20, 0, 0, 0, 0, time.UTC)

	got := exp.Expand(start, domain.RepeatRule{
		Kind:     domain.RepeatMonth,
		Interval: 1,
		Bound:    domain.EndDateBound(end),
	})

	want := []time.Time{
		mustParse(t, "2024-06-15T08:00:00"),
		mustParse(t, "2024-07-15T08:00:00"),
		mustParse(t, "2024-08-15T08:00:00"),
	}
	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d occurrences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
