package category

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryRepository struct {
	categories map[uint]*entities.Category
	nextID     uint
}

func (r *fakeCategoryRepository) GetCategories(context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepository) GetCategoryByID(_ context.Context, id uint) (*entities.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepository) GetCategoryByName(_ context.Context, name string) (*entities.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepository) CreateCategory(_ context.Context, c *entities.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepository) UpdateCategory(_ context.Context, c *entities.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepository) DeleteCategory(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

type fakeUsage map[uint]int64

func (f fakeUsage) CountByCategory(_ context.Context, id uint) (int64, error) {
	return f[id], nil
}

func TestCategoryService_CreateRejectsDuplicate(t *testing.T) {
	repo := &fakeCategoryRepository{categories: map[uint]*entities.Category{1: {ID: 1, Name: "Buah"}}, nextID: 1}
	svc := NewCategoryService(repo, fakeUsage{})

	_, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{Name: " buah "})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)

	res, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{Name: "Sayuran"})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryResponse{ID: 2, Name: "Sayuran"}, res)
}

func TestCategoryService_UpdateKeepsOwnName(t *testing.T) {
	repo := &fakeCategoryRepository{categories: map[uint]*entities.Category{
		1: {ID: 1, Name: "Buah"},
		2: {ID: 2, Name: "Ikan"},
	}, nextID: 2}
	svc := NewCategoryService(repo, fakeUsage{})

	res, err := svc.UpdateCategory(context.Background(), 1, domain.CategoryRequest{Name: "BUAH"})
	require.NoError(t, err)
	assert.Equal(t, "BUAH", res.Name)

	_, err = svc.UpdateCategory(context.Background(), 1, domain.CategoryRequest{Name: "ikan"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)

	_, err = svc.UpdateCategory(context.Background(), 9, domain.CategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryService_DeleteInUse(t *testing.T) {
	repo := &fakeCategoryRepository{categories: map[uint]*entities.Category{
		1: {ID: 1, Name: "Buah"},
		2: {ID: 2, Name: "Ikan"},
	}}
	svc := NewCategoryService(repo, fakeUsage{1: 3})

	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 1), domain.ErrCategoryInUse)
	assert.NoError(t, svc.DeleteCategory(context.Background(), 2))
	assert.NotContains(t, repo.categories, uint(2))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), 2), domain.ErrCategoryNotFound)
}

func TestCategoryService_CreateRestoresDeleted(t *testing.T) {
	removed := &entities.Category{ID: 4, Name: "Ikan"}
	removed.DeletedAt = gorm.DeletedAt{Valid: true}
	repo := &fakeCategoryRepository{categories: map[uint]*entities.Category{4: removed}, nextID: 4}
	svc := NewCategoryService(repo, fakeUsage{})

	res, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{Name: "ikan"})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryResponse{ID: 4, Name: "ikan"}, res)
	assert.False(t, repo.categories[4].DeletedAt.Valid)
}
