package domain

import "math"

// Stay time assumed for a stop that does not declare one.
const DefaultVisitMinutes = 60

// Represents a single point-of-interest candidate for a trip.
// A Stop carries an opaque identifier into the places store and, once
// resolution has run, a geographic location. VisitDurationMinutes and
// Cost are caller-supplied hints; Cost is passed through untouched by
// the planning algorithms.
type Stop struct {
	ID                   string
	Name                 string
	Location             *Coordinate
	VisitDurationMinutes *float64
	Cost                 *float64
}

// VisitMinutes returns the declared stay time in minutes, falling back
// to DefaultVisitMinutes when it is absent or not a usable number.
// The fallback is a deliberate policy, not silent corruption: a plan
// must always carry a stay estimate per stop.
func (s Stop) VisitMinutes() float64 {
	d := s.VisitDurationMinutes
	if d == nil || math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0 {
		return DefaultVisitMinutes
	}
	return *d
}

// StaySeconds returns the stay time converted to whole seconds.
func (s Stop) StaySeconds() int {
	return int(math.Round(s.VisitMinutes() * 60))
}
