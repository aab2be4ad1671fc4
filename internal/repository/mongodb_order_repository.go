package repository

import (
	"context"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrOrderNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrOrderNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return order, err
	}

	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (data []domain.Order, err error) {
	filter := bson.D{{Key: "userId", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return r.findOrders(ctx, filter, opts, "GetOrdersByUserID")
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	return r.findOrders(ctx, bson.D{}, opts, "GetOrders")
}

func (r *MongoDBOrderRepositoryImpl) GetPaidOrders(ctx context.Context) (data []domain.Order, err error) {
	filter := bson.D{{Key: "isPaid", Value: true}}

	return r.findOrders(ctx, filter, nil, "GetPaidOrders")
}

func (r *MongoDBOrderRepositoryImpl) GetUndeliveredOrders(ctx context.Context, limit int64) (data []domain.Order, err error) {
	filter := bson.D{{Key: "isDelivered", Value: false}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)

	return r.findOrders(ctx, filter, opts, "GetUndeliveredOrders")
}

func (r *MongoDBOrderRepositoryImpl) findOrders(ctx context.Context, filter interface{}, opts *options.FindOptions, component string) (data []domain.Order, err error) {
	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) CountOrders(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("orders").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrders").Msg("")
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) CountOrdersByDelivered(ctx context.Context, delivered bool) (count int64, err error) {
	filter := bson.D{{Key: "isDelivered", Value: delivered}}

	count, err = r.db.Collection("orders").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrdersByDelivered").Msg("")
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) MarkOrderPaid(ctx context.Context, id primitive.ObjectID, paidAt int64, result domain.PaymentResult) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPaid", Value: true},
		{Key: "paidAt", Value: paidAt},
		{Key: "paymentResult", Value: result},
		{Key: "updatedAt", Value: paidAt},
	}}}

	res, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderPaid").Msg("Failed to update order")
		return
	}

	if res.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) MarkOrderDelivered(ctx context.Context, id primitive.ObjectID, deliveredAt int64) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isDelivered", Value: true},
		{Key: "deliveredAt", Value: deliveredAt},
		{Key: "updatedAt", Value: deliveredAt},
	}}}

	res, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderDelivered").Msg("Failed to update order")
		return
	}

	if res.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return
}

// HandleTrx runs fn inside a mongo session transaction. The session context
// satisfies context.Context, so repository calls made with it participate in
// the transaction; any error from fn aborts and rolls back every write.
func (r *MongoDBOrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessionCtx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
