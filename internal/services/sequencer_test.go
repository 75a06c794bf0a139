package services

import (
	"testing"

	"tour-planner-service/internal/domain"
)

func stopAt(id string, lat, lng float64) domain.Stop {
	return domain.Stop{ID: id, Location: &domain.Coordinate{Lat: lat, Lng: lng}}
}

func TestGreedyOrderVisitsNearestFirst(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lng: 0}
	stops := []domain.Stop{
		stopAt("far", 0, 0.3),
		stopAt("near", 0, 0.1),
		stopAt("mid", 0, 0.2),
	}

	ordered := GreedyOrder(origin, stops)

	want := []string{"near", "mid", "far"}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d stops, got %d", len(want), len(ordered))
	}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, ordered[i].ID, id)
		}
	}
}

func TestGreedyOrderIsPermutation(t *testing.T) {
	origin := domain.Coordinate{Lat: 28.61, Lng: 77.20}
	stops := []domain.Stop{
		stopAt("a", 28.6562, 77.241),
		stopAt("b", 28.6129, 77.2295),
		stopAt("c", 28.5245, 77.1855),
		stopAt("d", 28.5535, 77.2588),
		stopAt("e", 28.5933, 77.2507),
	}

	ordered := GreedyOrder(origin, stops)

	if len(ordered) != len(stops) {
		t.Fatalf("expected %d stops, got %d", len(stops), len(ordered))
	}

	seen := make(map[string]int)
	for _, s := range ordered {
		seen[s.ID]++
	}
	for _, s := range stops {
		if seen[s.ID] != 1 {
			t.Errorf("stop %q appears %d times, want exactly once", s.ID, seen[s.ID])
		}
	}
}

func TestGreedyOrderDeterministic(t *testing.T) {
	origin := domain.Coordinate{Lat: 28.61, Lng: 77.20}
	stops := []domain.Stop{
		stopAt("a", 28.6562, 77.241),
		stopAt("b", 28.6129, 77.2295),
		stopAt("c", 28.5245, 77.1855),
	}

	first := GreedyOrder(origin, stops)
	second := GreedyOrder(origin, stops)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("runs diverge at position %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestGreedyOrderTieBreaksByInputOrder(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lng: 0}
	// Two stops at the exact same location: the earlier input position wins.
	stops := []domain.Stop{
		stopAt("first", 0, 0.1),
		stopAt("second", 0, 0.1),
	}

	ordered := GreedyOrder(origin, stops)
	if ordered[0].ID != "first" || ordered[1].ID != "second" {
		t.Fatalf("tie not broken by input order: got [%q, %q]", ordered[0].ID, ordered[1].ID)
	}
}

func TestGreedyOrderDegenerateSizes(t *testing.T) {
	origin := domain.Coordinate{Lat: 0, Lng: 0}

	if got := GreedyOrder(origin, nil); len(got) != 0 {
		t.Errorf("empty input: got %d stops, want 0", len(got))
	}

	single := []domain.Stop{stopAt("only", 1, 1)}
	got := GreedyOrder(origin, single)
	if len(got) != 1 || got[0].ID != "only" {
		t.Errorf("single input: got %v", got)
	}
}
