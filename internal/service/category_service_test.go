package service

import (
	"context"
	"testing"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := CreateCategoryService(repo)

	created, err := svc.AddCategory(context.Background(), dto.CategoryRequest{Name: "Snacks", Image: "snacks.png"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Snacks", created.Name)
	assert.NotZero(t, created.CreatedAt)
}

func TestAddCategoryRejectsDuplicateName(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := CreateCategoryService(repo)

	_, err := svc.AddCategory(context.Background(), dto.CategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	_, err = svc.AddCategory(context.Background(), dto.CategoryRequest{Name: "Snacks"})
	assert.ErrorIs(t, err, errs.ErrDuplicateName)

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1, "the duplicate must not be persisted")
}

func TestGetCategories(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.put(domain.Category{Name: "Fruits & Vegetables"})
	repo.put(domain.Category{Name: "Dairy & Breakfast"})
	svc := CreateCategoryService(repo)

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fruits & Vegetables", categories[0].Name)
}
