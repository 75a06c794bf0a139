package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tour-planner-service/internal/domain"
)

const placesCollection = "places"

// MongoDB-backed implementation of the PlaceRepository port.
// Read-only from the planning core's point of view; writes happen
// through seeding tools only.
type MongoPlaceRepository struct {
	col *mongo.Collection
}

func NewMongoPlaceRepository(database *mongo.Database) *MongoPlaceRepository {
	return &MongoPlaceRepository{col: database.Collection(placesCollection)}
}

// Return the stored places matching the given ids, keyed by place id.
// Ids without a stored document are absent from the result; that is a
// resolution concern, not an error.
func (r *MongoPlaceRepository) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Place, error) {
	if r.col == nil {
		return nil, errors.New("place repository: collection is nil")
	}

	out := make(map[string]domain.Place, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"placeId": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find places by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var places []domain.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("find places by ids: decode: %w", err)
	}

	for _, p := range places {
		out[p.PlaceID] = p
	}

	return out, nil
}

// Retrieve all stored places, best rated first.
func (r *MongoPlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if r.col == nil {
		return nil, errors.New("place repository: collection is nil")
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer cursor.Close(ctx)

	places := make([]domain.Place, 0, 64)
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("list places: decode: %w", err)
	}

	return places, nil
}
