package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

const defaultRouteTTL = 15 * time.Minute

// CachedOptimizer decorates a RouteOptimizer with a Redis cache of
// successful results, keyed by the exact origin and stop sequence.
//
// The cache is best-effort: an unreachable Redis or a corrupt entry
// falls through to the live call and never fails the request. Failed
// optimizations are not cached, so the fallback path stays live.
type CachedOptimizer struct {
	inner ports.RouteOptimizer
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedOptimizer(inner ports.RouteOptimizer, rdb *redis.Client, ttl time.Duration) *CachedOptimizer {
	if ttl <= 0 {
		ttl = defaultRouteTTL
	}
	return &CachedOptimizer{inner: inner, rdb: rdb, ttl: ttl}
}

// cachedRoute stores a permutation over the request's stop indices
// rather than the stops themselves, so an entry can only ever be
// replayed against the stop set that produced it.
type cachedRoute struct {
	Order      []int `json:"order"`
	LegSeconds []int `json:"legSeconds"`
}

func (c *CachedOptimizer) OptimizeWaypoints(
	ctx context.Context,
	origin domain.Coordinate,
	stops []domain.Stop,
) (ports.OptimizedRoute, error) {
	if c.rdb == nil || len(stops) == 0 {
		return c.inner.OptimizeWaypoints(ctx, origin, stops)
	}

	key := routeKey(origin, stops)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		if route, ok := decodeCached(payload, stops); ok {
			return route, nil
		}
		log.WithField("key", key).Warn("discarding malformed route cache entry")
	} else if !errors.Is(err, redis.Nil) {
		log.WithError(err).Warn("route cache read failed")
	}

	route, err := c.inner.OptimizeWaypoints(ctx, origin, stops)
	if err != nil {
		return route, err
	}

	if encoded, ok := encodeCached(route, stops); ok {
		if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			log.WithError(err).Warn("route cache write failed")
		}
	}

	return route, nil
}

// routeKey hashes the origin plus every stop id and location, in input
// order. Any change to the request produces a different key.
func routeKey(origin domain.Coordinate, stops []domain.Stop) string {
	h := sha256.New()
	fmt.Fprintf(h, "%f,%f", origin.Lat, origin.Lng)
	for _, s := range stops {
		if s.Location != nil {
			fmt.Fprintf(h, "|%s@%f,%f", s.ID, s.Location.Lat, s.Location.Lng)
		} else {
			fmt.Fprintf(h, "|%s@?", s.ID)
		}
	}
	return "routecache:" + hex.EncodeToString(h.Sum(nil))
}

func encodeCached(route ports.OptimizedRoute, stops []domain.Stop) ([]byte, bool) {
	if len(route.Stops) != len(stops) || len(route.LegSeconds) != len(route.Stops) {
		return nil, false
	}

	position := make(map[string]int, len(stops))
	for i, s := range stops {
		if _, dup := position[s.ID]; dup {
			// Duplicate ids make the permutation ambiguous; skip caching.
			return nil, false
		}
		position[s.ID] = i
	}

	order := make([]int, 0, len(route.Stops))
	for _, s := range route.Stops {
		idx, ok := position[s.ID]
		if !ok {
			return nil, false
		}
		order = append(order, idx)
	}

	payload, err := json.Marshal(cachedRoute{Order: order, LegSeconds: route.LegSeconds})
	if err != nil {
		return nil, false
	}
	return payload, true
}

func decodeCached(payload []byte, stops []domain.Stop) (ports.OptimizedRoute, bool) {
	var entry cachedRoute
	if err := json.Unmarshal(payload, &entry); err != nil {
		return ports.OptimizedRoute{}, false
	}

	if len(entry.Order) != len(stops) || len(entry.LegSeconds) != len(stops) {
		return ports.OptimizedRoute{}, false
	}

	seen := make([]bool, len(stops))
	ordered := make([]domain.Stop, 0, len(stops))
	for _, idx := range entry.Order {
		if idx < 0 || idx >= len(stops) || seen[idx] {
			return ports.OptimizedRoute{}, false
		}
		seen[idx] = true
		ordered = append(ordered, stops[idx])
	}

	return ports.OptimizedRoute{Stops: ordered, LegSeconds: entry.LegSeconds}, true
}
