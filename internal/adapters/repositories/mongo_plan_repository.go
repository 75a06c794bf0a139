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

const plansCollection = "plans"

// MongoDB-backed implementation of the PlanRepository port.
type MongoPlanRepository struct {
	col *mongo.Collection
}

func NewMongoPlanRepository(database *mongo.Database) *MongoPlanRepository {
	return &MongoPlanRepository{col: database.Collection(plansCollection)}
}

func (r *MongoPlanRepository) Insert(ctx context.Context, plan domain.SavedPlan) error {
	if r.col == nil {
		return errors.New("plan repository: collection is nil")
	}

	if _, err := r.col.InsertOne(ctx, plan); err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// Return all plans owned by user, newest first.
func (r *MongoPlanRepository) ListByUser(ctx context.Context, user string) ([]domain.SavedPlan, error) {
	if r.col == nil {
		return nil, errors.New("plan repository: collection is nil")
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, fmt.Errorf("list plans for user %q: %w", user, err)
	}
	defer cursor.Close(ctx)

	plans := make([]domain.SavedPlan, 0, 16)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("list plans for user %q: decode: %w", user, err)
	}

	return plans, nil
}

// Delete removes one plan owned by user and reports whether it existed.
// The user filter keeps one caller from deleting another's plan.
func (r *MongoPlanRepository) Delete(ctx context.Context, user, id string) (bool, error) {
	if r.col == nil {
		return false, errors.New("plan repository: collection is nil")
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user": user})
	if err != nil {
		return false, fmt.Errorf("delete plan %q: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoPlanRepository) DeleteAllByUser(ctx context.Context, user string) error {
	if r.col == nil {
		return errors.New("plan repository: collection is nil")
	}

	if _, err := r.col.DeleteMany(ctx, bson.M{"user": user}); err != nil {
		return fmt.Errorf("delete plans for user %q: %w", user, err)
	}
	return nil
}
