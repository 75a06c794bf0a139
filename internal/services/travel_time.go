package services

import (
	"math"

	"tour-planner-service/internal/domain"
)

// Assumptions behind the straight-line travel-time heuristic.
// The road factor pads the great-circle distance because roads are not
// straight lines.
const (
	assumedSpeedKmh = 40.0
	roadFactor      = 1.1
)

// HeuristicLegSeconds estimates driving time between two points from
// their straight-line distance. It is used whenever real travel times
// are unavailable; a single trip never mixes heuristic legs with
// provider legs.
func HeuristicLegSeconds(from, to domain.Coordinate) int {
	km := domain.HaversineKm(from, to)
	return int(math.Round(km / assumedSpeedKmh * 3600 * roadFactor))
}

// legSecondsForOrder computes heuristic travel times for the
// consecutive legs of a fixed visiting order, starting from origin.
// Every stop must carry a location; resolution runs before this point.
func legSecondsForOrder(origin domain.Coordinate, stops []domain.Stop) []int {
	legs := make([]int, 0, len(stops))
	prev := origin
	for _, s := range stops {
		legs = append(legs, HeuristicLegSeconds(prev, *s.Location))
		prev = *s.Location
	}
	return legs
}
