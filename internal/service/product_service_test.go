package service

import (
	"context"
	"testing"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	pkgdto "github.com/quickbasket/quickbasket-api/pkg/dto"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddProductResolvesCategoryName(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	category := categoryRepo.put(domain.Category{Name: "Snacks"})
	svc := CreateProductService(productRepo, categoryRepo)

	owner := primitive.NewObjectID()
	created, err := svc.AddProduct(context.Background(), owner.Hex(), dto.ProductRequest{
		Name:         "Salted Peanuts",
		Brand:        "NuttyCo",
		CategoryID:   category.ID.Hex(),
		Price:        3.5,
		CountInStock: 40,
	})
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Snacks", created.Category)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, category.ID, created.CategoryID)
}

func TestAddProductRejectsUnknownCategory(t *testing.T) {
	svc := CreateProductService(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := svc.AddProduct(context.Background(), primitive.NewObjectID().Hex(), dto.ProductRequest{
		Name:       "Salted Peanuts",
		CategoryID: primitive.NewObjectID().Hex(),
		Price:      3.5,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetProductsFiltersByCategory(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	snacks := categoryRepo.put(domain.Category{Name: "Snacks"})
	dairy := categoryRepo.put(domain.Category{Name: "Dairy & Breakfast"})
	productRepo.put(domain.Product{Name: "Salted Peanuts", CategoryID: snacks.ID})
	productRepo.put(domain.Product{Name: "Whole Milk", CategoryID: dairy.ID})
	svc := CreateProductService(productRepo, categoryRepo)

	products, err := svc.GetProducts(context.Background(), pkgdto.Filter{Category: snacks.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Salted Peanuts", products[0].Name)
	assert.Equal(t, "Snacks", products[0].Category)
}

func TestGetProductsFiltersByKeyword(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	snacks := categoryRepo.put(domain.Category{Name: "Snacks"})
	productRepo.put(domain.Product{Name: "Salted Peanuts", CategoryID: snacks.ID})
	productRepo.put(domain.Product{Name: "Potato Chips", CategoryID: snacks.ID})
	svc := CreateProductService(productRepo, categoryRepo)

	products, err := svc.GetProducts(context.Background(), pkgdto.Filter{Keyword: "peanut"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Salted Peanuts", products[0].Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	svc := CreateProductService(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := svc.GetProductByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestUpdateProductChangesCategory(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	snacks := categoryRepo.put(domain.Category{Name: "Snacks"})
	dairy := categoryRepo.put(domain.Category{Name: "Dairy & Breakfast"})
	product := productRepo.put(domain.Product{Name: "Salted Peanuts", CategoryID: snacks.ID, Price: 3.5, CountInStock: 40})
	svc := CreateProductService(productRepo, categoryRepo)

	updated, err := svc.UpdateProduct(context.Background(), dto.ProductRequest{
		ID:           product.ID.Hex(),
		Name:         "Salted Peanuts XL",
		CategoryID:   dairy.ID.Hex(),
		Price:        4.25,
		CountInStock: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, "Salted Peanuts XL", updated.Name)
	assert.Equal(t, "Dairy & Breakfast", updated.Category)
	assert.Equal(t, 4.25, updated.Price)

	stored, err := productRepo.GetProductByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, dairy.ID, stored.CategoryID)
	assert.Equal(t, int64(25), stored.CountInStock)
}

func TestDeleteProduct(t *testing.T) {
	productRepo := newFakeProductRepo()
	product := productRepo.put(domain.Product{Name: "Salted Peanuts"})
	svc := CreateProductService(productRepo, newFakeCategoryRepo())

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID.Hex()))

	err := svc.DeleteProduct(context.Background(), product.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}
