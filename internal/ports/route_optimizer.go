package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// The outcome of an external waypoint optimization: a reordering of the
// input stops plus the real travel seconds for each leg, where
// LegSeconds[i] is the travel to Stops[i] from the previous point
// (origin for i == 0). len(LegSeconds) == len(Stops) always holds for a
// value produced by a conforming optimizer.
type OptimizedRoute struct {
	Stops      []domain.Stop
	LegSeconds []int
}

// Contract for a third-party waypoint-optimization capability.
type RouteOptimizer interface {
	// Reorder stops to approximately minimize total travel time from
	// origin. A malformed provider response is an error, never a
	// partial result; callers are expected to fall back locally.
	OptimizeWaypoints(ctx context.Context, origin domain.Coordinate, stops []domain.Stop) (OptimizedRoute, error)
}
