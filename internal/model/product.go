package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a catalog item. Reads are public; every mutation must
// pass the access gate first.
type Product struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	SKU         string        `json:"sku,omitempty" bson:"sku,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Category    string        `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64       `json:"price" bson:"price"`
	Quantity    int64         `json:"quantity" bson:"quantity"`
	ImageURL    string        `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
