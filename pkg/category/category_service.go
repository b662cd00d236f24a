package category

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id uint) error
	}

	// UsageCounter reports how many food items still reference a category.
	UsageCounter interface {
		CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		usage              UsageCounter
	}
)

func NewCategoryService(categoryRepository CategoryRepository, usage UsageCounter) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		usage:              usage,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, domain.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return response, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.categoryRepository.GetCategoryByName(ctx, name)
	switch {
	case err == nil && existing.DeletedAt.Valid:
		existing.Name = name
		existing.DeletedAt = gorm.DeletedAt{}
		if err := s.categoryRepository.UpdateCategory(ctx, existing); err != nil {
			return domain.CategoryResponse{}, err
		}
		return domain.CategoryResponse{ID: existing.ID, Name: existing.Name}, nil
	case err == nil:
		return domain.CategoryResponse{}, domain.ErrCategoryExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{Name: name}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, id); err != nil {
		return domain.CategoryResponse{}, err
	}

	category.Name = name
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	inUse, err := s.usage.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrCategoryInUse
	}

	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.categoryRepository.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrCategoryExists
	}
	return nil
}
