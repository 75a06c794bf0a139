package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: read-only boundary over the persisted places store.
// The planning core consults it for stop coordinates and never writes.
type PlaceRepository interface {
	// Return the places matching the given ids, keyed by place id.
	// Ids with no stored document are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Place, error)

	// Retrieve all stored places.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
