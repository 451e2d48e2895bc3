// Package store holds the MongoDB-backed repositories.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	UsersCollection           = "users"
	ProductsCollection        = "products"
	OrdersCollection          = "orders"
	CompletedOrdersCollection = "completed_orders"
	QuotesCollection          = "badge_quotes"
)

const defaultTimeout = 5 * time.Second

// Repositories groups every repository built from one database
type Repositories struct {
	Users    UserRepository
	Products ProductRepository
	Orders   OrderRepository
	Quotes   QuoteRepository
}

// NewRepositories wires the Mongo repositories for db
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:    &MongoUserRepository{Collection: db.Collection(UsersCollection)},
		Products: &MongoProductRepository{Collection: db.Collection(ProductsCollection)},
		Orders: NewOrderRepository(
			&MongoOrderCollection{Collection: db.Collection(OrdersCollection)},
			&MongoOrderCollection{Collection: db.Collection(CompletedOrdersCollection)},
		),
		Quotes: &MongoQuoteRepository{Collection: db.Collection(QuotesCollection), Now: time.Now},
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}

func timestamp(now func() time.Time) string {
	return now().UTC().Format(time.RFC3339)
}
