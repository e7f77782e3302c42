package domain

// Category classifies an activity record.
type Category string

const (
	CategoryFeeding  Category = "FEEDING"
	CategoryCare     Category = "CARE"
	CategoryActivity Category = "ACTIVITY"
)

func (c Category) String() string {
	return string(c)
}

// ActivityTemplate is a persisted activity record carrying a recurrence
// rule. The remote activity store is the source of truth; this service only
// reads and writes templates through the store client.
type ActivityTemplate struct {
	ID       int64
	PetID    int64
	Category Category
	Title    string
	Notes    string

	// Category-specific fields, opaque to the scheduling core.
	FoodType string
	Quantity string
	Duration string

	// Date and Time are the same combined local instant, stored as
	// "YYYY-MM-DDTHH:mm:ss" strings (see localtime).
	Date string
	Time string

	Notify bool
	Repeat RepeatRule
}
