package repository

import (
	"context"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (category domain.Category, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return category, err
	}

	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByName").Msg("")
		return category, err
	}

	return category, nil
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		// The unique index on name closes the check-then-insert race the
		// application-level existence check leaves open.
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrDuplicateName
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}
