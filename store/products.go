package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"foxy-admin/models"
)

// ProductRepository is the persistence contract for products
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	// FindByID returns nil, nil when the product does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	// Update reports whether a product matched id.
	Update(ctx context.Context, id primitive.ObjectID, update models.ProductUpdate) (bool, error)
	// Delete reports whether a product was removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MongoProductRepository implements ProductRepository on the "products" collection
type MongoProductRepository struct {
	Collection *mongo.Collection
}

func (r *MongoProductRepository) List(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	product.ID = primitive.NewObjectID()
	if _, err := r.Collection.InsertOne(ctx, product); err != nil {
		return primitive.NilObjectID, err
	}
	return product.ID, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, u models.ProductUpdate) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":        u.Name,
			"price":       u.Price,
			"quantity":    u.Quantity,
			"description": u.Description,
			"adoptable":   u.Adoptable,
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
