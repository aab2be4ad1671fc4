package service

import (
	"context"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	pkgdto "github.com/quickbasket/quickbasket-api/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	AddProduct(ctx context.Context, userID string, payload dto.ProductRequest) (data dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest) (data dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type CategoryService interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	AddCategory(ctx context.Context, payload dto.CategoryRequest) (data domain.Category, err error)
}

type ConfigService interface {
	GetConfig(ctx context.Context) (data domain.SiteConfig, err error)
	UpdateConfig(ctx context.Context, payload dto.ConfigRequest) (data domain.SiteConfig, err error)
	ResetConfig(ctx context.Context) (data domain.SiteConfig, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, userID string, payload dto.OrderRequest) (data dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, orderID string, requesterID string, isAdmin bool) (data dto.OrderResponse, err error)
	GetMyOrders(ctx context.Context, userID string) (data []dto.OrderResponse, err error)
	GetOrders(ctx context.Context) (data []dto.OrderResponse, err error)
	MarkOrderPaid(ctx context.Context, orderID string, requesterID string, isAdmin bool, payload dto.PaymentResultRequest) (data dto.OrderResponse, err error)
	MarkOrderDelivered(ctx context.Context, orderID string) (data dto.OrderResponse, err error)
	GetOrderStats(ctx context.Context) (data dto.OrderStatsResponse, err error)
}
