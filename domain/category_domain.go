package domain

import "errors"

var (
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessCreateCategory  = "category created successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageFailedGetCategories    = "failed to retrieve categories"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedUpdateCategory   = "failed to update category"
	MessageFailedDeleteCategory   = "failed to delete category"
	ErrCategoryNotFound           = errors.New("category not found")
	ErrCategoryExists             = errors.New("category already exists")
	ErrCategoryInUse              = errors.New("category is still used by food items")

	DefaultCategories = []string{"Sayuran", "Buah", "Daging", "Ikan", "Susu & Olahan", "Bumbu", "Minuman", "Lainnya"}
)

type (
	CategoryRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	CategoryResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
