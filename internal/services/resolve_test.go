package services

import (
	"context"
	"errors"
	"testing"

	"tour-planner-service/internal/domain"
)

type fakePlaceRepo struct {
	places map[string]domain.Place
	err    error
	calls  int
}

func (f *fakePlaceRepo) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Place, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]domain.Place, len(ids))
	for _, id := range ids {
		if p, ok := f.places[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Place, 0, len(f.places))
	for _, p := range f.places {
		out = append(out, p)
	}
	return out, nil
}

func TestResolveStopsCallerCoordinateWins(t *testing.T) {
	repo := &fakePlaceRepo{places: map[string]domain.Place{
		"x": {PlaceID: "x", Location: &domain.Coordinate{Lat: 50, Lng: 50}},
	}}

	stops := []domain.Stop{stopAt("x", 10, 10)}

	resolved, err := ResolveStops(context.Background(), stops, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolved[0].Location.Lat != 10 || resolved[0].Location.Lng != 10 {
		t.Fatalf("caller coordinate overridden by store: %+v", resolved[0].Location)
	}
	// Nothing was missing, so the store is never consulted.
	if repo.calls != 0 {
		t.Fatalf("store consulted %d times, want 0", repo.calls)
	}
}

func TestResolveStopsFillsFromStore(t *testing.T) {
	repo := &fakePlaceRepo{places: map[string]domain.Place{
		"x": {
			PlaceID:  "x",
			Name:     "Stored Name",
			Location: &domain.Coordinate{Lat: 28.65, Lng: 77.25},
			Duration: 75,
		},
	}}

	stops := []domain.Stop{{ID: "x"}}

	resolved, err := ResolveStops(context.Background(), stops, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := resolved[0]
	if got.Location == nil || got.Location.Lat != 28.65 {
		t.Fatalf("location not filled from store: %+v", got.Location)
	}
	if got.Name != "Stored Name" {
		t.Errorf("name not enriched from store: %q", got.Name)
	}
	if got.VisitMinutes() != 75 {
		t.Errorf("stay estimate not enriched from store: %v", got.VisitMinutes())
	}

	// Input must stay untouched; resolution works on a copy.
	if stops[0].Location != nil {
		t.Fatal("resolution mutated its input")
	}
}

func TestResolveStopsMissingEverywhere(t *testing.T) {
	repo := &fakePlaceRepo{places: map[string]domain.Place{}}

	stops := []domain.Stop{{ID: "ghost", Name: "Ghost Stop"}}

	_, err := ResolveStops(context.Background(), stops, repo)

	var mlErr *MissingLocationError
	if !errors.As(err, &mlErr) {
		t.Fatalf("expected MissingLocationError, got %v", err)
	}
	if mlErr.Name != "Ghost Stop" {
		t.Fatalf("error names %q, want the stop's name", mlErr.Name)
	}
}

func TestResolveStopsStoreUnreachable(t *testing.T) {
	repo := &fakePlaceRepo{err: errors.New("connection refused")}

	// Stops with caller-supplied coordinates resolve despite the outage.
	withCoords := []domain.Stop{stopAt("ok", 1, 1)}
	resolved, err := ResolveStops(context.Background(), withCoords, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved[0].Location == nil {
		t.Fatal("caller-supplied location lost")
	}

	// A stop that needed the store fails as missing.
	needsStore := []domain.Stop{{ID: "needs-store"}}
	_, err = ResolveStops(context.Background(), needsStore, repo)
	var mlErr *MissingLocationError
	if !errors.As(err, &mlErr) {
		t.Fatalf("expected MissingLocationError, got %v", err)
	}
}

func TestResolveStopsInvalidCallerCoordinateFallsToStore(t *testing.T) {
	repo := &fakePlaceRepo{places: map[string]domain.Place{
		"x": {PlaceID: "x", Location: &domain.Coordinate{Lat: 28.65, Lng: 77.25}},
	}}

	// Out-of-range latitude is treated as absent, not passed through.
	stops := []domain.Stop{stopAt("x", 123, 77)}

	resolved, err := ResolveStops(context.Background(), stops, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved[0].Location.Lat != 28.65 {
		t.Fatalf("invalid caller coordinate not replaced: %+v", resolved[0].Location)
	}
}
