package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

type stubPlaceRepo struct {
	places map[string]domain.Place
	err    error
}

func (s *stubPlaceRepo) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]domain.Place, len(ids))
	for _, id := range ids {
		if p, ok := s.places[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *stubPlaceRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Place, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, p)
	}
	return out, nil
}

type stubOptimizer struct {
	route ports.OptimizedRoute
	err   error
}

func (s *stubOptimizer) OptimizeWaypoints(ctx context.Context, origin domain.Coordinate, stops []domain.Stop) (ports.OptimizedRoute, error) {
	if s.err != nil {
		return ports.OptimizedRoute{}, s.err
	}
	return s.route, nil
}

func postPlan(t *testing.T, h *TourPlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/plan/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)
	return rec
}

func TestOptimizeRejectsMissingOrigin(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{"destinations": [{"id": "a", "location": {"lat": 1, "lng": 1}}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "origin") {
		t.Fatalf("error should mention origin: %s", rec.Body.String())
	}
}

func TestOptimizeRejectsEmptyDestinations(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{"origin": {"lat": 28.61, "lng": 77.20}, "destinations": []}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeRejectsInvalidJSON(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{"origin": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeUnorderedPlanPreservesInputOrder(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{
		"origin": {"lat": 28.61, "lng": 77.20},
		"destinations": [
			{"id": "A", "name": "Stop A", "location": {"lat": 28.65, "lng": 77.25}, "visitDurationMinutes": 60},
			{"id": "B", "name": "Stop B", "location": {"lat": 28.55, "lng": 77.10}, "visitDurationMinutes": 90}
		],
		"optimize": false
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.TourPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Optimized {
		t.Fatal("optimize=false must report optimized=false")
	}
	if len(res.Plan) != 2 || res.Plan[0].ID != "A" || res.Plan[1].ID != "B" {
		t.Fatalf("input order not preserved: %+v", res.Plan)
	}
	if res.TimeDetails.TotalVisitMin != 150 {
		t.Errorf("totalVisitMin = %d, want 150", res.TimeDetails.TotalVisitMin)
	}
	if res.Plan[0].LegTravelSec <= 0 {
		t.Errorf("legTravelSec must be positive, got %d", res.Plan[0].LegTravelSec)
	}
}

func TestOptimizeAcceptsEnvelopedOrigin(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{
		"origin": {"location": {"lat": 28.61, "lng": 77.20}},
		"destinations": [{"id": "A", "location": {"lat": 28.65, "lng": 77.25}}],
		"optimize": false
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestOptimizeFallsBackWhenOptimizerFails(t *testing.T) {
	h := &TourPlanHandler{
		Places:    &stubPlaceRepo{},
		Optimizer: &stubOptimizer{err: errors.New("unavailable")},
	}

	rec := postPlan(t, h, `{
		"origin": {"lat": 28.61, "lng": 77.20},
		"destinations": [
			{"id": "A", "location": {"lat": 28.65, "lng": 77.25}},
			{"id": "B", "location": {"lat": 28.55, "lng": 77.10}}
		],
		"optimize": true
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.TourPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !res.Optimized {
		t.Fatal("fallback plan must still report optimized=true")
	}
	// Greedy picks A, the stop nearer the origin, first.
	if res.Plan[0].ID != "A" {
		t.Fatalf("expected greedy order, first stop %q", res.Plan[0].ID)
	}
}

func TestOptimizeNamesStopMissingLocation(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{}}

	rec := postPlan(t, h, `{
		"origin": {"lat": 28.61, "lng": 77.20},
		"destinations": [{"id": "ghost-id", "name": "Ghost Palace"}]
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ghost Palace") {
		t.Fatalf("error should name the offending stop: %s", rec.Body.String())
	}
}

func TestOptimizeResolvesStopFromStore(t *testing.T) {
	h := &TourPlanHandler{Places: &stubPlaceRepo{places: map[string]domain.Place{
		"stored": {
			PlaceID:  "stored",
			Name:     "Stored Place",
			Location: &domain.Coordinate{Lat: 28.6562, Lng: 77.241},
		},
	}}}

	rec := postPlan(t, h, `{
		"origin": {"lat": 28.61, "lng": 77.20},
		"destinations": [{"id": "stored"}]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.TourPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Plan[0].Name != "Stored Place" {
		t.Fatalf("store data not used: %+v", res.Plan[0])
	}
}
