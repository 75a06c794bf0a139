package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a boundary for persisting itineraries a caller chose to keep.
type PlanRepository interface {
	Insert(ctx context.Context, plan domain.SavedPlan) error
	ListByUser(ctx context.Context, user string) ([]domain.SavedPlan, error)
	// Delete removes one plan owned by user; reports whether it existed.
	Delete(ctx context.Context, user, id string) (bool, error)
	DeleteAllByUser(ctx context.Context, user string) error
}
