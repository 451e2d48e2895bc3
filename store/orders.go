package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"foxy-admin/models"
)

// Statuses listed by default from each collection
var (
	ActiveStatuses    = []string{"pending", "failed", "cancelled"}
	CompletedStatuses = []string{"paid", "processing", "shipped"}
)

// OrderCollection is one physical order collection
type OrderCollection interface {
	// Find returns orders whose status is in statuses, or every order when statuses is nil.
	Find(ctx context.Context, statuses []string) ([]models.Order, error)
	// FindByID returns nil, nil when the order is not in this collection.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// UpdateStatus reports whether an order matched id.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, updatedAt string) (bool, error)
}

// OrderRepository presents the active and completed collections as one
type OrderRepository interface {
	// List returns the merged orders, newest first.
	List(ctx context.Context, showCompleted bool) ([]models.Order, error)
	// FindByID returns nil, nil when neither collection holds the order.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	// UpdateStatus reports whether either collection held the order.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error)
}

// SplitOrderRepository is the OrderRepository over the two order collections.
// Nothing outside this type knows there are two.
type SplitOrderRepository struct {
	active    OrderCollection
	completed OrderCollection
	now       func() time.Time
}

// NewOrderRepository builds the repository from the active and completed collections
func NewOrderRepository(active, completed OrderCollection) *SplitOrderRepository {
	return &SplitOrderRepository{active: active, completed: completed, now: time.Now}
}

// List fails when the active collection cannot be read. A failing completed collection
// is treated as not existing yet, so its orders are silently left out.
func (r *SplitOrderRepository) List(ctx context.Context, showCompleted bool) ([]models.Order, error) {
	activeFilter, completedFilter := ActiveStatuses, CompletedStatuses
	if showCompleted {
		activeFilter, completedFilter = nil, nil
	}

	orders, err := r.active.Find(ctx, activeFilter)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	completed, err := r.completed.Find(ctx, completedFilter)
	if err != nil {
		slog.Warn("Skipping completed orders collection", "error", err)
	} else {
		orders = append(orders, completed...)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

func (r *SplitOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, err := r.active.FindByID(ctx, id)
	if err != nil || order != nil {
		return order, err
	}
	return r.completed.FindByID(ctx, id)
}

// UpdateStatus tries the active collection first and the completed one only when
// nothing matched there.
func (r *SplitOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	updatedAt := timestamp(r.now)

	matched, err := r.active.UpdateStatus(ctx, id, status, updatedAt)
	if err != nil {
		return false, err
	}
	if matched {
		return true, nil
	}

	matched, err = r.completed.UpdateStatus(ctx, id, status, updatedAt)
	if err != nil {
		return false, fmt.Errorf("updating completed order: %w", err)
	}
	return matched, nil
}

// MongoOrderCollection implements OrderCollection on a Mongo collection
type MongoOrderCollection struct {
	Collection *mongo.Collection
}

func (c *MongoOrderCollection) Find(ctx context.Context, statuses []string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if statuses != nil {
		filter = bson.M{"status": bson.M{"$in": statuses}}
	}

	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *MongoOrderCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var order models.Order
	err := c.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *MongoOrderCollection) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, updatedAt string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": updatedAt,
		},
	}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
