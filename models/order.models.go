package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingAddress is the delivery address captured at checkout
type ShippingAddress struct {
	Line1    string  `bson:"line1" json:"line1"`
	Line2    *string `bson:"line2,omitempty" json:"line2,omitempty"`
	City     string  `bson:"city" json:"city"`
	Postcode string  `bson:"postcode" json:"postcode"`
	Country  string  `bson:"country" json:"country"`
}

// OrderItem is one line of an order. The storefront writes product_id as a string.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	LineTotal float64 `bson:"line_total" json:"line_total"`
}

// Order lives in either "orders" (before payment) or "completed_orders" (after payment)
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderReference  string             `bson:"order_reference" json:"order_reference"`
	CustomerName    string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	ShippingCost    float64            `bson:"shipping_cost" json:"shipping_cost"`
	Total           float64            `bson:"total" json:"total"`
	Currency        string             `bson:"currency" json:"currency"`
	Status          string             `bson:"status" json:"status"` // e.g. "pending", "paid", "shipped"
	CreatedAt       string             `bson:"created_at" json:"created_at"`
	UpdatedAt       string             `bson:"updated_at" json:"updated_at"`
}

// ShippingAddressDisplay has Line2 flattened to a string
type ShippingAddressDisplay struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// OrderDisplay is the template-facing view of an Order
type OrderDisplay struct {
	ID                 string                 `json:"id"`
	OrderReference     string                 `json:"order_reference"`
	CustomerName       string                 `json:"customer_name"`
	CustomerEmail      string                 `json:"customer_email"`
	ShippingAddress    ShippingAddressDisplay `json:"shipping_address"`
	Items              []OrderItem            `json:"items"`
	Subtotal           float64                `json:"subtotal"`
	ShippingCost       float64                `json:"shipping_cost"`
	Total              float64                `json:"total"`
	Currency           string                 `json:"currency"`
	Status             string                 `json:"status"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
	FormattedTotal     string                 `json:"formatted_total"`
	FormattedCreatedAt string                 `json:"formatted_created_at"`
	StatusClass        string                 `json:"status_class"`
}

// OrderOperationResponse is the JSON body of order operations
type OrderOperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}
