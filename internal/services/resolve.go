package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// ResolveStops fills in missing stop locations from the persisted
// places store and returns a resolved copy of the input.
//
// Priority: a valid caller-supplied coordinate wins over the stored
// one, so callers can override stale store data. A stop that neither
// source can geolocate fails the whole operation with
// MissingLocationError. The store is read-only here; an unreachable
// store counts as a miss for every unresolved stop.
func ResolveStops(ctx context.Context, stops []domain.Stop, places ports.PlaceRepository) ([]domain.Stop, error) {
	resolved := make([]domain.Stop, len(stops))
	copy(resolved, stops)

	needed := make([]string, 0, len(resolved))
	for _, s := range resolved {
		if !hasValidLocation(s) && s.ID != "" {
			needed = append(needed, s.ID)
		}
	}

	var stored map[string]domain.Place
	if len(needed) > 0 && places != nil {
		var err error
		stored, err = places.FindByIDs(ctx, needed)
		if err != nil {
			log.WithError(err).Warn("places store unavailable during stop resolution")
			stored = nil
		}
	}

	for i := range resolved {
		if hasValidLocation(resolved[i]) {
			continue
		}

		p, ok := stored[resolved[i].ID]
		if !ok || p.Location == nil || !p.Location.Valid() {
			return nil, &MissingLocationError{StopID: resolved[i].ID, Name: resolved[i].Name}
		}

		loc := *p.Location
		resolved[i].Location = &loc
		if resolved[i].Name == "" {
			resolved[i].Name = p.Name
		}
		// The store may carry a curated stay estimate.
		if resolved[i].VisitDurationMinutes == nil && p.Duration > 0 {
			d := p.Duration
			resolved[i].VisitDurationMinutes = &d
		}
	}

	return resolved, nil
}

func hasValidLocation(s domain.Stop) bool {
	return s.Location != nil && s.Location.Valid()
}
