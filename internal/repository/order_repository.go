package repository

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"poppys/internal/errors"
	"poppys/internal/model"
)

const orderCollection = "ordersCollection"

// UpdateOrderParams holds the optional fields of an order patch.
type UpdateOrderParams struct {
	Status *model.OrderStatus
	Total  *float64
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUserEmail(ctx context.Context, email string) ([]model.Order, error)
	Update(ctx context.Context, id bson.ObjectID, params UpdateOrderParams) (*model.Order, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

type orderRepository struct {
	db *mongo.Database
}

// NewOrderRepository builds a Mongo-backed order repository.
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.db.Collection(orderCollection).InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Order, error) {
	var order model.Order
	if err := r.db.Collection(orderCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *orderRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Order, error) {
	return r.list(ctx, bson.M{"user_email": email})
}

func (r *orderRepository) list(ctx context.Context, filter bson.M) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection(orderCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, id bson.ObjectID, params UpdateOrderParams) (*model.Order, error) {
	set := bson.M{}
	if params.Status != nil {
		set["status"] = *params.Status
	}
	if params.Total != nil {
		set["total"] = *params.Total
	}
	if len(set) == 0 {
		return nil, errors.ErrEmptyUpdate
	}
	set["updated_at"] = time.Now()

	result := r.db.Collection(orderCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var order model.Order
	if err := result.Decode(&order); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.db.Collection(orderCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.db.Collection(orderCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.StatusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
