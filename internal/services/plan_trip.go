package services

import (
	"context"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

// TripRequest is the canonical, already-normalized planning input.
// Ingress adapters convert every accepted wire shape into this before
// anything in the planning core runs.
type TripRequest struct {
	Origin   domain.Coordinate
	Stops    []domain.Stop
	Optimize bool
}

// TripPlan is the finalized trip returned to callers.
type TripPlan struct {
	Optimized bool
	Strategy  Strategy
	Itinerary domain.Itinerary
}

// PlanTrip validates the request, resolves stop locations against the
// places store, selects an ordering strategy, and attaches timing.
// Each call is an independent unit of work over its own value copies;
// there is no shared mutable state between requests.
func PlanTrip(
	ctx context.Context,
	req TripRequest,
	places ports.PlaceRepository,
	optimizer ports.RouteOptimizer,
	now time.Time,
) (_ TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if !req.Origin.Valid() {
		return TripPlan{}, &ValidationError{Msg: "origin must be a valid lat/lng coordinate"}
	}
	if len(req.Stops) == 0 {
		return TripPlan{}, &ValidationError{Msg: "at least one destination is required"}
	}

	resolved, err := ResolveStops(ctx, req.Stops, places)
	if err != nil {
		return TripPlan{}, err
	}

	routed, err := PlanOrder(ctx, req.Origin, resolved, req.Optimize, optimizer)
	if err != nil {
		return TripPlan{}, err
	}

	origin := req.Origin
	return TripPlan{
		Optimized: routed.Optimized(),
		Strategy:  routed.Strategy,
		Itinerary: BuildTimeline(&origin, routed.Stops, routed.LegSeconds, now),
	}, nil
}
