package activitystore

import (
	"context"

	"github.com/vetly/activity-scheduling/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=activitystore

// ActivityStore is the remote source of truth for activity templates.
// Store errors propagate as-is; retry policy belongs to the caller.
type ActivityStore interface {
	Create(ctx context.Context, input CreateActivityInput) (*domain.ActivityTemplate, error)
	Update(ctx context.Context, id int64, patch UpdateActivityInput) (*domain.ActivityTemplate, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, petID *int64) ([]domain.ActivityTemplate, error)
}

// PetDirectory resolves pet display names and existence.
type PetDirectory interface {
	ListPets(ctx context.Context) ([]Pet, error)
}
