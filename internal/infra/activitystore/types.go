package activitystore

import (
	"fmt"

	"github.com/vetly/activity-scheduling/internal/domain"
	"github.com/vetly/activity-scheduling/internal/localtime"
)

type Pet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActivityResponse is the store's wire shape for one template. The repeat
// rule arrives as loose optional fields and is normalized into the tagged
// domain rule on decode.
type ActivityResponse struct {
	ID             int64  `json:"id"`
	PetID          int64  `json:"pet_id"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Notes          string `json:"notes,omitempty"`
	FoodType       string `json:"food_type,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notify         bool   `json:"notify"`
	RepeatType     string `json:"repeat_type"`
	RepeatInterval int    `json:"repeat_interval,omitempty"`
	RepeatEndDate  string `json:"repeat_end_date,omitempty"`
	RepeatCount    int    `json:"repeat_count,omitempty"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Count      int                `json:"count"`
}

type PetListResponse struct {
	Pets []Pet `json:"pets"`
}

type CreateActivityInput struct {
	PetID          int64  `json:"pet_id"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Notes          string `json:"notes,omitempty"`
	FoodType       string `json:"food_type,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notify         bool   `json:"notify"`
	RepeatType     string `json:"repeat_type"`
	RepeatInterval int    `json:"repeat_interval,omitempty"`
	RepeatEndDate  string `json:"repeat_end_date,omitempty"`
	RepeatCount    int    `json:"repeat_count,omitempty"`
}

// UpdateActivityInput is a sparse patch; nil fields are left unchanged by
// the store.
type UpdateActivityInput struct {
	Title  *string `json:"title,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Notify *bool   `json:"notify,omitempty"`
}

func (r ActivityResponse) ToDomain(codec *localtime.Codec) (domain.ActivityTemplate, error) {
	rule := domain.NoRepeat()
	if kind := domain.RepeatKind(r.RepeatType); kind != domain.RepeatNone && r.RepeatType != "" {
		switch {
		case r.RepeatCount > 0:
			rule = domain.NewRepeatRule(kind, r.RepeatInterval, nil, r.RepeatCount)
		case r.RepeatEndDate != "":
			endDate, err := codec.ParseDate(r.RepeatEndDate)
			if err != nil {
				return domain.ActivityTemplate{}, fmt.Errorf("activity %d repeat end date: %w", r.ID, err)
			}
			rule = domain.NewRepeatRule(kind, r.RepeatInterval, &endDate, 0)
		default:
			rule = domain.NewRepeatRule(kind, r.RepeatInterval, nil, 0)
		}
	}

	return domain.ActivityTemplate{
		ID:       r.ID,
		PetID:    r.PetID,
		Category: domain.Category(r.Category),
		Title:    r.Title,
		Notes:    r.Notes,
		FoodType: r.FoodType,
		Quantity: r.Quantity,
		Duration: r.Duration,
		Date:     r.Date,
		Time:     r.Time,
		Notify:   r.Notify,
		Repeat:   rule,
	}, nil
}
