package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a staff account in the "users" collection
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	IsAdmin      bool               `bson:"is_admin" json:"is_admin"`
}

// Credentials is the login form payload
type Credentials struct {
	Username string
	Password string
	Next     string
}

// UserState is what every page knows about the caller
type UserState struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Username        string `json:"username"`
	IsAdmin         bool   `json:"is_admin"`
}

// LoggedIn mirrors IsAuthenticated for templates.
func (s UserState) LoggedIn() bool {
	return s.IsAuthenticated
}
