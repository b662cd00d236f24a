package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipe     = "recipe generated successfully"
	MessageSuccessGenerateFertilizer = "fertilizer generated successfully"
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetFertilizers     = "success get fertilizers"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessDeleteFertilizer   = "fertilizer deleted successfully"

	MessageFailedGenerateRecipe     = "Gagal membuat resep"
	MessageFailedGenerateFertilizer = "Gagal membuat pupuk"
	MessageFailedGetRecipes         = "failed to get recipes"
	MessageFailedGetFertilizers     = "failed to get fertilizers"
	MessageFailedDeleteRecipe       = "failed to delete recipe"
	MessageFailedDeleteFertilizer   = "failed to delete fertilizer"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrFertilizerNotFound = errors.New("fertilizer not found")
	ErrGeminiAPIFailed    = errors.New("gemini API processing failed")
	ErrNoIngredients      = errors.New("Harap pilih makanan terlebih dahulu")
	ErrIngredientNotFound = errors.New("selected food item not found")
)

type (
	IngredientSelection struct {
		ID       uint `json:"id" validate:"required"`
		Quantity int  `json:"quantity"`
	}

	GenerateRequest struct {
		Ingredients []IngredientSelection `json:"ingredients" validate:"required,min=1,dive"`
	}

	RecipeResponse struct {
		ID          uint      `json:"id"`
		Recipe      string    `json:"recipe"`
		Ingredients []string  `json:"ingredients"`
		CreatedAt   time.Time `json:"createdAt"`
		CreatedBy   string    `json:"created_by,omitempty"`
	}

	FertilizerResponse struct {
		ID          uint      `json:"id"`
		Fertilizer  string    `json:"fertilizer"`
		Ingredients []string  `json:"ingredients"`
		CreatedAt   time.Time `json:"createdAt"`
		CreatedBy   string    `json:"created_by,omitempty"`
	}
)
