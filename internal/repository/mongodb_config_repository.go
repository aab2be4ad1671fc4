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

type MongoDBConfigRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewConfigRepository(db *mongo.Database) ConfigRepository {
	return &MongoDBConfigRepositoryImpl{db: db}
}

func (r *MongoDBConfigRepositoryImpl) GetConfig(ctx context.Context) (config domain.SiteConfig, err error) {
	err = r.db.Collection("config").FindOne(ctx, bson.D{}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return config, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetConfig").Msg("")
		return config, err
	}

	return config, nil
}

func (r *MongoDBConfigRepositoryImpl) InsertConfig(ctx context.Context, data domain.SiteConfig) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("config").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertConfig").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBConfigRepositoryImpl) ReplaceConfig(ctx context.Context, data domain.SiteConfig) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	result, err := r.db.Collection("config").ReplaceOne(ctx, filter, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceConfig").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBConfigRepositoryImpl) DeleteConfigs(ctx context.Context) (err error) {
	_, err = r.db.Collection("config").DeleteMany(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteConfigs").Msg("")
	}

	return
}
