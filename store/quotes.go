package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foxy-admin/models"
)

// QuoteRepository is the persistence contract for badge quotes.
// An empty status means no status filter.
type QuoteRepository interface {
	Count(ctx context.Context, status string) (int64, error)
	// List returns quotes newest first, paginated by the store.
	List(ctx context.Context, status string, skip, limit int) ([]models.CustomBadgeQuote, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error)
}

// MongoQuoteRepository implements QuoteRepository on the "badge_quotes" collection
type MongoQuoteRepository struct {
	Collection *mongo.Collection
	Now        func() time.Time
}

func quoteFilter(status string) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": status}
}

func (r *MongoQuoteRepository) Count(ctx context.Context, status string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return r.Collection.CountDocuments(ctx, quoteFilter(status))
}

func (r *MongoQuoteRepository) List(ctx context.Context, status string, skip, limit int) ([]models.CustomBadgeQuote, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, quoteFilter(status), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	quotes := []models.CustomBadgeQuote{}
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *MongoQuoteRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": timestamp(r.Now),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
