package virtual

import (
	"testing"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
)

func newTestGenerator() Generator {
	return NewGenerator(recurrence.NewExpander(), localtime.NewCodec(time.UTC))
}

func dailyTemplate(id int64, date string, count int) domain.ActivityTemplate {
	return domain.ActivityTemplate{
		ID:       id,
		PetID:    42,
		Category: domain.CategoryFeeding,
		Title:    "Breakfast",
		Date:     date,
		Time:     date,
		Notify:   true,
		Repeat: domain.RepeatRule{
			Kind:     domain.RepeatDay,
			Interval: 1,
			Bound:    domain.CountBound(count),
		},
	}
}

func TestExpandProvenance(t *testing.T) {
	gen := newTestGenerator()
	template := dailyTemplate(7, "2024-01-01T08:00:00", 3)

	got, err := gen.Expand(template)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("Expand() returned %d occurrences, want 4", len(got))
	}

	first := got[0]
	if first.IsVirtual {
		t.Error("occurrence[0].IsVirtual = true, want false")
	}
	if first.VirtualIndex != 0 {
		t.Errorf("occurrence[0].VirtualIndex = %d, want 0", first.VirtualIndex)
	}
	if first.ID != template.ID {
		t.Errorf("occurrence[0].ID = %d, want %d", first.ID, template.ID)
	}

	for i, occ := range got[1:] {
		index := i + 1
		if !occ.IsVirtual {
			t.Errorf("occurrence[%d].IsVirtual = false, want true", index)
		}
		if occ.OriginalActivityID != template.ID {
			t.Errorf("occurrence[%d].OriginalActivityID = %d, want %d", index, occ.OriginalActivityID, template.ID)
		}
		if occ.VirtualIndex != index {
			t.Errorf("occurrence[%d].VirtualIndex = %d, want %d", index, occ.VirtualIndex, index)
		}
		if occ.ID == template.ID {
			t.Errorf("occurrence[%d].ID collides with template id %d", index, template.ID)
		}
	}
}

func TestExpandDerivedDates(t *testing.T) {
	gen := newTestGenerator()
	template := dailyTemplate(7, "2024-01-01T08:00:00", 2)

	got, err := gen.Expand(template)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	wantDates := []string{
		"2024-01-01T08:00:00",
		"2024-01-02T08:00:00",
		"2024-01-03T08:00:00",
	}
	if len(got) != len(wantDates) {
		t.Fatalf("Expand() returned %d occurrences, want %d", len(got), len(wantDates))
	}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Errorf("occurrence[%d].Date = %q, want %q", i, got[i].Date, want)
		}
		if got[i].Time != want {
			t.Errorf("occurrence[%d].Time = %q, want %q", i, got[i].Time, want)
		}
	}
}

func TestExpandListConcatenatesInOrder(t *testing.T) {
	gen := newTestGenerator()
	templates := []domain.ActivityTemplate{
		dailyTemplate(1, "2024-01-01T08:00:00", 1),
		dailyTemplate(2, "2024-01-05T09:00:00", 1),
	}

	got := gen.ExpandList(templates)

	if len(got) != 4 {
		t.Fatalf("ExpandList() returned %d occurrences, want 4", len(got))
	}
	wantTemplateIDs := []int64{1, 1, 2, 2}
	for i, occ := range got {
		sourceID := occ.ID
		if occ.IsVirtual {
			sourceID = occ.OriginalActivityID
		}
		if sourceID != wantTemplateIDs[i] {
			t.Errorf("occurrence[%d] sourced from template %d, want %d", i, sourceID, wantTemplateIDs[i])
		}
	}
}

func TestExpandListSkipsUnparseableTemplates(t *testing.T) {
	gen := newTestGenerator()
	broken := dailyTemplate(3, "not-a-date", 2)
	templates := []domain.ActivityTemplate{
		broken,
		dailyTemplate(4, "2024-01-01T08:00:00", 1),
	}

	got := gen.ExpandList(templates)

	if len(got) != 2 {
		t.Fatalf("ExpandList() returned %d occurrences, want 2", len(got))
	}
	for i, occ := range got {
		if occ.ID == broken.ID || occ.OriginalActivityID == broken.ID {
			t.Errorf("occurrence[%d] derived from unparseable template", i)
		}
	}
}

func TestFilterByDate(t *testing.T) {
	gen := newTestGenerator()
	template := dailyTemplate(5, "2024-01-01T08:00:00", 4)

	occurrences, err := gen.Expand(template)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	got := gen.FilterByDate(occurrences, time.Date(2024, time.January, 3, 15, 0, 0, 0, time.UTC))

	if len(got) != 1 {
		t.Fatalf("FilterByDate() returned %d occurrences, want 1", len(got))
	}
	if got[0].Date != "2024-01-03T08:00:00" {
		t.Errorf("FilterByDate() kept %q, want 2024-01-03T08:00:00", got[0].Date)
	}
}

func TestFilterByRangeInclusive(t *testing.T) {
	gen := newTestGenerator()
	template := dailyTemplate(6, "2024-01-01T08:00:00", 4)

	occurrences, err := gen.Expand(template)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	start := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 4, 8, 0, 0, 0, time.UTC)
	got := gen.FilterByRange(occurrences, start, end)

	wantDates := []string{
		"2024-01-02T08:00:00",
		"2024-01-03T08:00:00",
		"2024-01-04T08:00:00",
	}
	if len(got) != len(wantDates) {
		t.Fatalf("FilterByRange() returned %d occurrences, want %d", len(got), len(wantDates))
	}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Errorf("occurrence[%d].Date = %q, want %q", i, got[i].Date, want)
		}
	}
}

func TestFilterByRangeEmptyInput(t *testing.T) {
	gen := newTestGenerator()

	got := gen.FilterByRange(nil, time.Now(), time.Now().Add(time.Hour))
	if len(got) != 0 {
		t.Errorf("FilterByRange(nil) = %v, want empty", got)
	}
}
