package service

import (
	"context"
	"time"

	"github.com/quickbasket/quickbasket-api/internal/domain"
	"github.com/quickbasket/quickbasket-api/internal/dto"
	"github.com/quickbasket/quickbasket-api/internal/repository"
	"github.com/quickbasket/quickbasket-api/pkg/errs"
)

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, payload dto.CategoryRequest) (data domain.Category, err error) {
	_, err = s.categoryRepo.GetCategoryByName(ctx, payload.Name)
	if err == nil {
		return data, errs.ErrDuplicateName
	}
	if err != errs.ErrNotFound {
		return
	}

	now := time.Now().Unix()
	category := domain.Category{
		Name:      payload.Name,
		Image:     payload.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	category.ID, err = s.categoryRepo.AddCategory(ctx, category)
	if err != nil {
		return
	}

	return category, nil
}
