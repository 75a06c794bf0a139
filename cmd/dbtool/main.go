package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/platform/db"
)

// dbtool initializes the places store: ensures indexes and (re)loads
// the seed file, replacing documents that share a place id.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGO_DB", "tourplanner")
	seedPath := getEnv("SEED_PATH", "data/seeds/places.json")

	client, err := db.ConnectMongo(mongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	database := client.Database(mongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Info("Ensuring indexes...")
	if err := repositories.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	log.WithField("path", seedPath).Info("Seeding places...")
	if err := repositories.SeedFromJSON(ctx, database, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Info("Seeding complete.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
