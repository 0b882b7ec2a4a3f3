package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"poppys/internal/errors"
	"poppys/internal/model"
)

const userCollection = "usersCollection"

// UpdateUserParams holds the optional profile fields of a patch. Only non-nil
// fields are written.
type UpdateUserParams struct {
	Name     *string
	PhotoURL *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, params UpdateUserParams) (*model.User, error)
	UpdateRole(ctx context.Context, id bson.ObjectID, role string) (*model.User, error)
	CountByMonth(ctx context.Context) ([]model.MonthCount, error)
	CountByWeek(ctx context.Context) ([]model.WeekCount, error)
}

type userRepository struct {
	db *mongo.Database
}

// NewUserRepository builds a Mongo-backed user repository. The unique index
// on email is the authoritative guard against duplicate registration; the
// service-level existence check is only a fast path.
func NewUserRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create user email index")
	}
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrUserExists
		}
		return err
	}
	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	if err := r.db.Collection(userCollection).FindOne(ctx, filter).Decode(&user); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.db.Collection(userCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, params UpdateUserParams) (*model.User, error) {
	set := bson.M{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.PhotoURL != nil {
		set["photo_url"] = *params.PhotoURL
	}
	if len(set) == 0 {
		return nil, errors.ErrEmptyUpdate
	}
	return r.applyUpdate(ctx, id, set)
}

func (r *userRepository) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (*model.User, error) {
	return r.applyUpdate(ctx, id, bson.M{"role": role})
}

func (r *userRepository) applyUpdate(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error) {
	set["updated_at"] = time.Now()

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user model.User
	if err := result.Decode(&user); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CountByMonth(ctx context.Context) ([]model.MonthCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.db.Collection(userCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.MonthCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepository) CountByWeek(ctx context.Context) ([]model.WeekCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year": bson.M{"$isoWeekYear": "$created_at"},
				"week": bson.M{"$isoWeek": "$created_at"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.week", Value: 1}}}},
	}

	cursor, err := r.db.Collection(userCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []model.WeekCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
