package recipe

import (
	"SaveBite/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id, userID uint) (int64, error)

		CreateFertilizer(ctx context.Context, fertilizer *entities.Fertilizer) error
		GetFertilizersByUser(ctx context.Context, userID uint) ([]*entities.Fertilizer, error)
		DeleteFertilizer(ctx context.Context, id, userID uint) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe only when it belongs to userID and reports
// how many rows went away.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Recipe{})
	return result.RowsAffected, result.Error
}

func (r *recipeRepository) CreateFertilizer(ctx context.Context, fertilizer *entities.Fertilizer) error {
	return r.db.WithContext(ctx).Create(fertilizer).Error
}

func (r *recipeRepository) GetFertilizersByUser(ctx context.Context, userID uint) ([]*entities.Fertilizer, error) {
	var fertilizers []*entities.Fertilizer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&fertilizers).Error; err != nil {
		return nil, err
	}
	return fertilizers, nil
}

func (r *recipeRepository) DeleteFertilizer(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Fertilizer{})
	return result.RowsAffected, result.Error
}
