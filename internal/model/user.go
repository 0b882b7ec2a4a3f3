package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered identity. Email is the unique identity key;
// there is no password credential in this system, registration alone yields
// a bearer token.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string        `json:"email" bson:"email"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty"`
	PhotoURL  string        `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Role      string        `json:"role,omitempty" bson:"role,omitempty"` // e.g. "admin"
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
