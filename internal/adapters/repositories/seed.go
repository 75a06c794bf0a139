package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tour-planner-service/internal/domain"
)

// EnsureIndexes creates the unique place-id index the resolver relies
// on for consistent lookups.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	col := database.Collection(placesCollection)

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "placeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure indexes: placeId: %w", err)
	}

	return nil
}

// Populate the places collection from a JSON seed file. Existing
// documents with the same place id are replaced.
func SeedFromJSON(ctx context.Context, database *mongo.Database, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var places []domain.Place
	if err := json.Unmarshal(raw, &places); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	for i, p := range places {
		if strings.TrimSpace(p.PlaceID) == "" {
			return fmt.Errorf("seed places: item %d has empty placeId", i+1)
		}
		if p.Location == nil || !p.Location.Valid() {
			return fmt.Errorf("seed places: placeId=%q has no valid location", p.PlaceID)
		}
	}

	col := database.Collection(placesCollection)
	replaceOpts := options.Replace().SetUpsert(true)

	for _, p := range places {
		_, err := col.ReplaceOne(ctx, bson.M{"placeId": p.PlaceID}, p, replaceOpts)
		if err != nil {
			return fmt.Errorf("seed places: upsert placeId=%q: %w", p.PlaceID, err)
		}
	}

	return nil
}

// SeedIfEmpty loads the seed file only when the places collection has
// no documents yet, so server startup never clobbers curated data.
func SeedIfEmpty(ctx context.Context, database *mongo.Database, jsonPath string) error {
	count, err := database.Collection(placesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed places: count documents: %w", err)
	}
	if count > 0 {
		return nil
	}

	return SeedFromJSON(ctx, database, jsonPath)
}
