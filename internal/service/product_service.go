package service

import (
	"context"
	"time"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/repository"
	pkgdto "github.com/quickbasket/quickbasket-api/pkg/dto"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx, param)
	if err != nil {
		return
	}

	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	names := make(map[primitive.ObjectID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	for _, product := range products {
		data = append(data, dto.ProductResponse{
			Product:  product,
			Category: names[product.CategoryID],
		})
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	data.Product = product

	category, err := s.categoryRepo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		if err != errs.ErrNotFound {
			return data, err
		}
		return data, nil
	}

	data.Category = category.Name
	return data, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, userID string, payload dto.ProductRequest) (data dto.ProductResponse, err error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return data, errs.ErrNotLoggedIn
	}

	categoryID, err := primitive.ObjectIDFromHex(payload.CategoryID)
	if err != nil {
		return data, errs.ErrClient
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	now := time.Now().Unix()
	product := domain.Product{
		UserID:       ownerID,
		CategoryID:   categoryID,
		Name:         payload.Name,
		Brand:        payload.Brand,
		Image:        payload.Image,
		Description:  payload.Description,
		Price:        payload.Price,
		CountInStock: payload.CountInStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	product.ID, err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	data.Product = product
	data.Category = category.Name
	return data, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest) (data dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(payload.CategoryID)
	if err != nil {
		return data, errs.ErrClient
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return
	}

	product.Name = payload.Name
	product.Brand = payload.Brand
	product.CategoryID = categoryID
	product.Image = payload.Image
	product.Description = payload.Description
	product.Price = payload.Price
	product.CountInStock = payload.CountInStock
	product.UpdatedAt = time.Now().Unix()

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return
	}

	data.Product = product
	data.Category = category.Name
	return data, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.productRepo.DeleteProduct(ctx, id)
}
