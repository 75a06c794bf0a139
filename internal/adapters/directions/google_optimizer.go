package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

// GoogleOptimizer implements RouteOptimizer using the Google Directions
// API with waypoint optimization (waypoints=optimize:true).
//
// The provider validates every response before handing it to callers:
// the returned waypoint order must be a bijection over the input stops
// and a travel duration must exist for every reordered leg. Anything
// malformed is an error, never a partial result. Safe for concurrent
// use.
type GoogleOptimizer struct {
	session *http.Client
	apiKey  string
	baseURL string
	mode    string
}

func NewGoogleOptimizer(apiKey string) (*GoogleOptimizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("google directions api key is empty")
	}

	return &GoogleOptimizer{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/directions/json",
		mode:    "driving",
	}, nil
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		WaypointOrder []int `json:"waypoint_order"`
		Legs          []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// OptimizeWaypoints reorders stops to approximately minimize driving
// time from origin. The trip is modeled as starting and ending at the
// origin, which is how the provider wants an open day trip phrased;
// only the legs up to the last stop are kept.
func (g *GoogleOptimizer) OptimizeWaypoints(
	ctx context.Context,
	origin domain.Coordinate,
	stops []domain.Stop,
) (_ ports.OptimizedRoute, err error) {
	defer obs.Time(ctx, "directions.OptimizeWaypoints")(&err)

	if len(stops) == 0 {
		return ports.OptimizedRoute{Stops: []domain.Stop{}, LegSeconds: []int{}}, nil
	}

	for _, s := range stops {
		if s.Location == nil {
			return ports.OptimizedRoute{}, fmt.Errorf("stop %q has no location", s.ID)
		}
	}

	endpoint := g.requestURL(origin, stops)

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return ports.OptimizedRoute{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.OptimizedRoute{}, fmt.Errorf("decode directions response: %w", err)
	}

	if dr.Status != "OK" {
		if dr.ErrorMessage != "" {
			return ports.OptimizedRoute{}, fmt.Errorf("directions status %s: %s", dr.Status, dr.ErrorMessage)
		}
		return ports.OptimizedRoute{}, fmt.Errorf("directions status %s", dr.Status)
	}

	if len(dr.Routes) == 0 {
		return ports.OptimizedRoute{}, fmt.Errorf("directions returned no routes")
	}

	route := dr.Routes[0]
	order := route.WaypointOrder

	if err := validatePermutation(order, len(stops)); err != nil {
		return ports.OptimizedRoute{}, err
	}

	if len(route.Legs) < len(stops) {
		return ports.OptimizedRoute{}, fmt.Errorf(
			"directions returned %d legs for %d stops", len(route.Legs), len(stops),
		)
	}

	ordered := make([]domain.Stop, 0, len(stops))
	for _, idx := range order {
		ordered = append(ordered, stops[idx])
	}

	legs := make([]int, 0, len(stops))
	for i := range stops {
		sec := route.Legs[i].Duration.Value
		if sec < 0 {
			return ports.OptimizedRoute{}, fmt.Errorf("directions leg %d has negative duration", i)
		}
		legs = append(legs, sec)
	}

	return ports.OptimizedRoute{Stops: ordered, LegSeconds: legs}, nil
}

func (g *GoogleOptimizer) requestURL(origin domain.Coordinate, stops []domain.Stop) string {
	waypoints := make([]string, 0, 1+len(stops))
	waypoints = append(waypoints, "optimize:true")
	for _, s := range stops {
		waypoints = append(waypoints, latLng(*s.Location))
	}

	q := url.Values{}
	q.Set("origin", latLng(origin))
	q.Set("destination", latLng(origin))
	q.Set("waypoints", strings.Join(waypoints, "|"))
	q.Set("mode", g.mode)
	q.Set("key", g.apiKey)

	return g.baseURL + "?" + q.Encode()
}

// validatePermutation checks that order is a bijection over [0, n).
func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("waypoint order has %d entries for %d stops", len(order), n)
	}

	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("waypoint order index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("waypoint order repeats index %d", idx)
		}
		seen[idx] = true
	}

	return nil
}

func latLng(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
