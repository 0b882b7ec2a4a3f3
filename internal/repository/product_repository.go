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

const productCollection = "productsCollection"

// UpdateProductParams holds the optional fields of a product patch.
type UpdateProductParams struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Quantity    *int64
	ImageURL    *string
}

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id bson.ObjectID, params UpdateProductParams) (*model.Product, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type productRepository struct {
	db *mongo.Database
}

// NewProductRepository builds a Mongo-backed product repository.
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.db.Collection(productCollection).InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *productRepository) findOne(ctx context.Context, filter bson.M) (*model.Product, error) {
	var product model.Product
	if err := r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	cursor, err := r.db.Collection(productCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, id bson.ObjectID, params UpdateProductParams) (*model.Product, error) {
	set := bson.M{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Category != nil {
		set["category"] = *params.Category
	}
	if params.Price != nil {
		set["price"] = *params.Price
	}
	if params.Quantity != nil {
		set["quantity"] = *params.Quantity
	}
	if params.ImageURL != nil {
		set["image_url"] = *params.ImageURL
	}
	if len(set) == 0 {
		return nil, errors.ErrEmptyUpdate
	}
	set["updated_at"] = time.Now()

	result := r.db.Collection(productCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var product model.Product
	if err := result.Decode(&product); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.db.Collection(productCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}
