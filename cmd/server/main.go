package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/directions"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/api"
	"tour-planner-service/internal/platform/db"
	"tour-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (MongoDB, Redis, Google Directions)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGO_DB", "tourplanner")
	seedPath := getEnv("SEED_PATH", "data/seeds/places.json")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	mapsKey := strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))

	client, err := db.ConnectMongo(mongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	database := client.Database(mongoDB)
	placeRepo := repositories.NewMongoPlaceRepository(database)
	planRepo := repositories.NewMongoPlanRepository(database)

	// Seed demo places on first run only; curated data is never clobbered.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repositories.EnsureIndexes(ctx, database); err != nil {
		cancel()
		log.Fatal(err)
	}
	if err := repositories.SeedIfEmpty(ctx, database, seedPath); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	// Without a Directions key the planner still works; it just never
	// takes the external optimization path.
	var optimizer ports.RouteOptimizer
	if mapsKey != "" {
		g, err := directions.NewGoogleOptimizer(mapsKey)
		if err != nil {
			log.Fatal(err)
		}
		optimizer = g
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set; external optimization disabled")
	}

	if rdb := db.ConnectRedis(redisAddr, redisPassword); rdb != nil && optimizer != nil {
		optimizer = cache.NewCachedOptimizer(optimizer, rdb, 15*time.Minute)
		log.WithField("addr", redisAddr).Info("route cache enabled")
	}

	router := api.NewRouter(placeRepo, planRepo, optimizer)

	// Write timeout covers cold-cache external optimization latency.
	log.WithField("addr", ":"+port).Info("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
