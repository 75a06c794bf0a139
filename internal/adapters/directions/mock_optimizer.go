package directions

import (
	"context"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// MockOptimizer is a scripted RouteOptimizer for tests: it returns
// either the configured route or the configured error.
type MockOptimizer struct {
	Route ports.OptimizedRoute
	Err   error
	Calls int
}

func (m *MockOptimizer) OptimizeWaypoints(
	ctx context.Context,
	origin domain.Coordinate,
	stops []domain.Stop,
) (ports.OptimizedRoute, error) {
	m.Calls++
	if m.Err != nil {
		return ports.OptimizedRoute{}, m.Err
	}
	return m.Route, nil
}
