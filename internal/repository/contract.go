package repository

import (
	"context"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	pkgdto "github.com/quickbasket/quickbasket-api/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	// DecrementStock applies a conditional decrement: it only matches when
	// countInStock >= qty, so stock can never go negative even under
	// concurrent orders. Insufficient stock surfaces as ErrInsufficientStock.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int64) (err error)
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id primitive.ObjectID) (category domain.Category, err error)
	GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error)
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (data []domain.Order, err error)
	GetOrders(ctx context.Context) (data []domain.Order, err error)
	GetPaidOrders(ctx context.Context) (data []domain.Order, err error)
	GetUndeliveredOrders(ctx context.Context, limit int64) (data []domain.Order, err error)
	CountOrders(ctx context.Context) (count int64, err error)
	CountOrdersByDelivered(ctx context.Context, delivered bool) (count int64, err error)
	MarkOrderPaid(ctx context.Context, id primitive.ObjectID, paidAt int64, result domain.PaymentResult) (err error)
	MarkOrderDelivered(ctx context.Context, id primitive.ObjectID, deliveredAt int64) (err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) (err error)
}

type ConfigRepository interface {
	GetConfig(ctx context.Context) (config domain.SiteConfig, err error)
	InsertConfig(ctx context.Context, data domain.SiteConfig) (id primitive.ObjectID, err error)
	ReplaceConfig(ctx context.Context, data domain.SiteConfig) (err error)
	DeleteConfigs(ctx context.Context) (err error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users []domain.User, err error)
}
