package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// Strategy identifies which ordering path produced a RoutedOrder.
type Strategy int

const (
	// Input order kept as-is; optimization was not requested.
	StrategyInputOrder Strategy = iota
	// Order and leg times came verbatim from the external optimizer.
	StrategyExternal
	// Local greedy nearest-neighbor order with heuristic leg times.
	StrategyGreedy
)

func (s Strategy) String() string {
	switch s {
	case StrategyExternal:
		return "external"
	case StrategyGreedy:
		return "greedy"
	default:
		return "input-order"
	}
}

// RoutedOrder is the outcome of strategy selection: a finalized
// visiting order plus per-leg travel seconds, with the strategy that
// produced them recorded explicitly so callers inspect a value rather
// than inferring control flow from errors.
type RoutedOrder struct {
	Strategy   Strategy
	Stops      []domain.Stop
	LegSeconds []int
}

// Optimized reports the flag exposed to callers. By convention the
// flag stays true when the external call failed and the greedy
// fallback ran: the caller's intent to optimize was honored, just by a
// different algorithm. Strategy still records which path actually ran.
func (r RoutedOrder) Optimized() bool {
	return r.Strategy != StrategyInputOrder
}

// PlanOrder picks an ordering strategy for the given stops.
//
//	optimize=false        keep input order, heuristic leg times
//	optimize=true, ok     external order and leg times verbatim
//	optimize=true, failed greedy nearest-neighbor, heuristic leg times
//
// A nil optimizer behaves like a failing one. Fewer than two stops
// means there is nothing to reorder; the input order passes through.
// Every stop must already carry a location; the first one without
// fails the whole operation with MissingLocationError.
func PlanOrder(
	ctx context.Context,
	origin domain.Coordinate,
	stops []domain.Stop,
	optimize bool,
	optimizer ports.RouteOptimizer,
) (RoutedOrder, error) {
	for _, s := range stops {
		if s.Location == nil {
			return RoutedOrder{}, &MissingLocationError{StopID: s.ID, Name: s.Name}
		}
	}

	if !optimize || len(stops) < 2 {
		order := append([]domain.Stop(nil), stops...)
		return RoutedOrder{
			Strategy:   StrategyInputOrder,
			Stops:      order,
			LegSeconds: legSecondsForOrder(origin, order),
		}, nil
	}

	if optimizer != nil {
		route, err := optimizer.OptimizeWaypoints(ctx, origin, stops)
		if err == nil {
			if len(route.Stops) != len(stops) || len(route.LegSeconds) != len(route.Stops) {
				return RoutedOrder{}, &ComputationError{Msg: fmt.Sprintf(
					"optimizer result inconsistent: %d stops in, %d stops out, %d legs",
					len(stops), len(route.Stops), len(route.LegSeconds),
				)}
			}
			return RoutedOrder{
				Strategy:   StrategyExternal,
				Stops:      route.Stops,
				LegSeconds: route.LegSeconds,
			}, nil
		}

		// Expected degraded path, not a request failure.
		optErr := &OptimizerError{Err: err}
		log.WithError(optErr).Warn("external optimizer failed, using greedy fallback")
	}

	order := GreedyOrder(origin, stops)
	return RoutedOrder{
		Strategy:   StrategyGreedy,
		Stops:      order,
		LegSeconds: legSecondsForOrder(origin, order),
	}, nil
}
