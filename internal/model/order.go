package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID bson.ObjectID `json:"product_id" bson:"product_id"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty"`
	Quantity  int64         `json:"quantity" bson:"quantity"`
	Price     float64       `json:"price" bson:"price"`
}

// Order represents a purchase. UserEmail is stamped server-side from the
// verified caller identity at creation and never taken from the request body.
type Order struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Reference string        `json:"reference" bson:"reference"`
	UserEmail string        `json:"user_email" bson:"user_email"`
	Status    OrderStatus   `json:"status" bson:"status"`
	Items     []OrderItem   `json:"items,omitempty" bson:"items,omitempty"`
	Total     float64       `json:"total" bson:"total"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
