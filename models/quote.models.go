package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomBadgeQuote is a request for a custom badge in the "badge_quotes" collection
type CustomBadgeQuote struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NumColors      string             `bson:"num_colors" json:"num_colors"`
	DoubleSided    bool               `bson:"double_sided" json:"double_sided"`
	PrintSize      string             `bson:"print_size" json:"print_size"`
	Thickness      string             `bson:"thickness" json:"thickness"`
	Email          string             `bson:"email" json:"email"`
	ImagePath      *string            `bson:"image_path,omitempty" json:"image_path,omitempty"`
	EstimatedPrice float64            `bson:"estimated_price" json:"estimated_price"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      string             `bson:"created_at" json:"created_at"`
	UpdatedAt      string             `bson:"updated_at" json:"updated_at"`
}

// QuoteDisplay is the template-facing view of a CustomBadgeQuote
type QuoteDisplay struct {
	ID                 string  `json:"id"`
	NumColors          string  `json:"num_colors"`
	DoubleSided        string  `json:"double_sided"` // "yes" or "no"
	PrintSize          string  `json:"print_size"`
	Thickness          string  `json:"thickness"`
	Email              string  `json:"email"`
	ImagePath          string  `json:"image_path"`
	EstimatedPrice     float64 `json:"estimated_price"`
	CreatedAt          string  `json:"created_at"`
	Status             string  `json:"status"`
	FormattedPrice     string  `json:"formatted_price"`
	FormattedCreatedAt string  `json:"formatted_created_at"`
	StatusClass        string  `json:"status_class"`
	SidedText          string  `json:"sided_text"`
}

// QuoteOperationResponse is the JSON body of quote operations
type QuoteOperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QuoteID string `json:"quote_id,omitempty"`
}
