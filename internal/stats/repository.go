package stats

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "statistics"

type Repository interface {
	Insert(ctx context.Context, s *Statistic) error
	FindAll(ctx context.Context) ([]Statistic, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Insert(ctx context.Context, s *Statistic) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert statistic failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Statistic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find statistics failed: %w", err)
	}
	defer cur.Close(ctx)

	var stats []Statistic
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode statistics failed: %w", err)
	}
	return stats, nil
}
