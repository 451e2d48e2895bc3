package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item in the "products" collection.
// Price is kept as the string the admin typed.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	Price       string             `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Description string             `bson:"description" json:"description"`
	Adoptable   bool               `bson:"adoptable" json:"adoptable"`
}

// ProductDisplay is the template-facing view of a Product
type ProductDisplay struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Adoptable   bool   `json:"adoptable"`
}

// ProductForm is shared by the create and edit forms
type ProductForm struct {
	Name        string
	Price       string
	Quantity    string
	Description string
	Adoptable   bool
}

// ProductUpdate holds the validated fields written on edit
type ProductUpdate struct {
	Name        string
	Price       string
	Quantity    int
	Description string
	Adoptable   bool
}

// ProductOperationResponse is the JSON body of product operations
type ProductOperationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID string `json:"product_id,omitempty"`
}
