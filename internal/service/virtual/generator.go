// Package virtual materializes display-only occurrence records from
// persisted activity templates. The generated records live for one query
// response and are never written back to the store.
package virtual

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/localtime"
	"github.com/vetly/activity-scheduling/internal/service/recurrence"
)

type Generator interface {
	// Expand returns the template as occurrence zero followed by its
	// generated occurrences.
	Expand(template domain.ActivityTemplate) ([]domain.VirtualOccurrence, error)

	// ExpandList concatenates per-template expansion in input order.
	// Templates whose date cannot be parsed are skipped with a logged
	// warning.
	ExpandList(templates []domain.ActivityTemplate) []domain.VirtualOccurrence

	// FilterByDate keeps occurrences falling on the given calendar date.
	FilterByDate(occurrences []domain.VirtualOccurrence, date time.Time) []domain.VirtualOccurrence

	// FilterByRange keeps occurrences within [start, end] inclusive.
	FilterByRange(occurrences []domain.VirtualOccurrence, start, end time.Time) []domain.VirtualOccurrence
}

type generatorImpl struct {
	expander recurrence.Expander
	codec    *localtime.Codec
}

func NewGenerator(expander recurrence.Expander, codec *localtime.Codec) Generator {
	return &generatorImpl{
		expander: expander,
		codec:    codec,
	}
}

func (g *generatorImpl) Expand(template domain.ActivityTemplate) ([]domain.VirtualOccurrence, error) {
	start, err := g.codec.Parse(template.Date)
	if err != nil {
		return nil, fmt.Errorf("template %d date: %w", template.ID, err)
	}

	instants := g.expander.Expand(start, template.Repeat)

	occurrences := make([]domain.VirtualOccurrence, 0, len(instants)+1)
	occurrences = append(occurrences, domain.TemplateOccurrence(template))
	for i, instant := range instants {
		occurrences = append(occurrences, domain.DerivedOccurrence(template, i+1, g.codec.Format(instant)))
	}

	return occurrences, nil
}

func (g *generatorImpl) ExpandList(templates []domain.ActivityTemplate) []domain.VirtualOccurrence {
	occurrences := make([]domain.VirtualOccurrence, 0, len(templates))
	for _, template := range templates {
		expanded, err := g.Expand(template)
		if err != nil {
			slog.Warn("skipping template with unparseable date",
				slog.Int64("template_id", template.ID),
				slog.String("date", template.Date),
				slog.String("error", err.Error()),
			)
			continue
		}
		occurrences = append(occurrences, expanded...)
	}
	return occurrences
}

func (g *generatorImpl) FilterByDate(occurrences []domain.VirtualOccurrence, date time.Time) []domain.VirtualOccurrence {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, g.codec.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)
	return g.FilterByRange(occurrences, dayStart, dayEnd)
}

func (g *generatorImpl) FilterByRange(occurrences []domain.VirtualOccurrence, start, end time.Time) []domain.VirtualOccurrence {
	filtered := make([]domain.VirtualOccurrence, 0, len(occurrences))
	for _, occ := range occurrences {
		instant, err := g.codec.Parse(occ.Date)
		if err != nil {
			continue
		}
		if instant.Before(start) || instant.After(end) {
			continue
		}
		filtered = append(filtered, occ)
	}
	return filtered
}
