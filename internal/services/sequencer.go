package services

import (
	"math"

	"tour-planner-service/internal/domain"
)

// GreedyOrder produces a visiting order by repeatedly selecting the
// unvisited stop nearest to the current position, starting at origin.
//
// The algorithm minimizes immediate travel distance at each step.
// It does not attempt global route optimization; determinism and
// simplicity win over optimality at realistic trip sizes. O(n²).
//
// Every stop must carry a valid location (resolution runs earlier).
// The result is a permutation of stops: same length, same elements.
func GreedyOrder(origin domain.Coordinate, stops []domain.Stop) []domain.Stop {
	ordered := make([]domain.Stop, 0, len(stops))
	if len(stops) <= 1 {
		return append(ordered, stops...)
	}

	visited := make([]bool, len(stops))
	current := origin

	for len(ordered) < len(stops) {
		best := -1
		bestDist := math.MaxFloat64

		for i, s := range stops {
			if visited[i] {
				continue
			}
			d := domain.HaversineKm(current, *s.Location)
			// Strict less-than keeps the earliest input position on
			// exact ties, so repeated runs yield identical sequences.
			if d < bestDist {
				bestDist = d
				best = i
			}
		}

		visited[best] = true
		ordered = append(ordered, stops[best])
		current = *stops[best].Location
	}

	return ordered
}
