package recipe

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, auth domain.AuthContext, req domain.GenerateRequest) (domain.RecipeResponse, error)
		GenerateFertilizer(ctx context.Context, auth domain.AuthContext, req domain.GenerateRequest) (domain.FertilizerResponse, error)
		GetRecipes(ctx context.Context, auth domain.AuthContext) ([]domain.RecipeResponse, error)
		GetFertilizers(ctx context.Context, auth domain.AuthContext) ([]domain.FertilizerResponse, error)
		DeleteRecipe(ctx context.Context, auth domain.AuthContext, id uint) error
		DeleteFertilizer(ctx context.Context, auth domain.AuthContext, id uint) error
		GetAllRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
	}

	// FoodLookup loads the caller's selected food items.
	FoodLookup interface {
		GetFoodItemsByIDs(ctx context.Context, userID uint, ids []uint) ([]*entities.FoodItem, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foods            FoodLookup
		generator        Generator
		logger           *zap.Logger
	}

	ingredient struct {
		Name     string
		Quantity int
	}
)

var markdownStripper = strings.NewReplacer("#", "", "*", "")

func NewRecipeService(recipeRepository RecipeRepository, foods FoodLookup, generator Generator, logger *zap.Logger) RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		foods:            foods,
		generator:        generator,
		logger:           logger,
	}
}

func (s *recipeService) GenerateRecipe(ctx context.Context, auth domain.AuthContext, req domain.GenerateRequest) (domain.RecipeResponse, error) {
	ingredients, err := s.selectIngredients(ctx, auth, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	text, err := s.generate(ctx, recipePrompt(ingredients))
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	names := ingredientLabels(ingredients)
	encoded, err := json.Marshal(names)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		UserID:      auth.UserID,
		Recipe:      text,
		Ingredients: string(encoded),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return domain.RecipeResponse{
		ID:          recipe.ID,
		Recipe:      recipe.Recipe,
		Ingredients: names,
		CreatedAt:   recipe.CreatedAt,
	}, nil
}

func (s *recipeService) GenerateFertilizer(ctx context.Context, auth domain.AuthContext, req domain.GenerateRequest) (domain.FertilizerResponse, error) {
	ingredients, err := s.selectIngredients(ctx, auth, req)
	if err != nil {
		return domain.FertilizerResponse{}, err
	}

	text, err := s.generate(ctx, fertilizerPrompt(ingredients))
	if err != nil {
		return domain.FertilizerResponse{}, err
	}

	names := ingredientLabels(ingredients)
	encoded, err := json.Marshal(names)
	if err != nil {
		return domain.FertilizerResponse{}, err
	}

	fertilizer := &entities.Fertilizer{
		UserID:      auth.UserID,
		Fertilizer:  text,
		Ingredients: string(encoded),
	}
	if err := s.recipeRepository.CreateFertilizer(ctx, fertilizer); err != nil {
		return domain.FertilizerResponse{}, err
	}

	return domain.FertilizerResponse{
		ID:          fertilizer.ID,
		Fertilizer:  fertilizer.Fertilizer,
		Ingredients: names,
		CreatedAt:   fertilizer.CreatedAt,
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, auth domain.AuthContext) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, domain.RecipeResponse{
			ID:          r.ID,
			Recipe:      r.Recipe,
			Ingredients: decodeIngredients(r.Ingredients),
			CreatedAt:   r.CreatedAt,
		})
	}
	return response, nil
}

func (s *recipeService) GetFertilizers(ctx context.Context, auth domain.AuthContext) ([]domain.FertilizerResponse, error) {
	fertilizers, err := s.recipeRepository.GetFertilizersByUser(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FertilizerResponse, 0, len(fertilizers))
	for _, f := range fertilizers {
		response = append(response, domain.FertilizerResponse{
			ID:          f.ID,
			Fertilizer:  f.Fertilizer,
			Ingredients: decodeIngredients(f.Ingredients),
			CreatedAt:   f.CreatedAt,
		})
	}
	return response, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, auth domain.AuthContext, id uint) error {
	deleted, err := s.recipeRepository.DeleteRecipe(ctx, id, auth.UserID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (s *recipeService) DeleteFertilizer(ctx context.Context, auth domain.AuthContext, id uint) error {
	deleted, err := s.recipeRepository.DeleteFertilizer(ctx, id, auth.UserID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrFertilizerNotFound
	}
	return nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res := domain.RecipeResponse{
			ID:          r.ID,
			Recipe:      r.Recipe,
			Ingredients: decodeIngredients(r.Ingredients),
			CreatedAt:   r.CreatedAt,
		}
		if r.User != nil {
			res.CreatedBy = r.User.Username
		}
		response = append(response, res)
	}
	return response, nil
}

// selectIngredients resolves the selection against the caller's foods. The
// requested amount is clamped to [1, available].
func (s *recipeService) selectIngredients(ctx context.Context, auth domain.AuthContext, req domain.GenerateRequest) ([]ingredient, error) {
	if len(req.Ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	ids := make([]uint, 0, len(req.Ingredients))
	for _, sel := range req.Ingredients {
		ids = append(ids, sel.ID)
	}

	foodItems, err := s.foods.GetFoodItemsByIDs(ctx, auth.UserID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*entities.FoodItem, len(foodItems))
	for _, f := range foodItems {
		byID[f.ID] = f
	}

	ingredients := make([]ingredient, 0, len(req.Ingredients))
	for _, sel := range req.Ingredients {
		f, ok := byID[sel.ID]
		if !ok {
			return nil, domain.ErrIngredientNotFound
		}
		ingredients = append(ingredients, ingredient{
			Name:     f.Name,
			Quantity: clampQuantity(sel.Quantity, f.Quantity),
		})
	}
	return ingredients, nil
}

func (s *recipeService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("generation failed", zap.Error(err))
		if errors.Is(err, domain.ErrGeminiAPIFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}

	text = strings.TrimSpace(markdownStripper.Replace(text))
	if text == "" {
		return "", domain.ErrGeminiAPIFailed
	}
	return text, nil
}

func clampQuantity(requested, available int) int {
	if requested > available {
		requested = available
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}

func ingredientLabels(ingredients []ingredient) []string {
	labels := make([]string, 0, len(ingredients))
	for _, i := range ingredients {
		labels = append(labels, fmt.Sprintf("%s (%d)", i.Name, i.Quantity))
	}
	return labels
}

func decodeIngredients(raw string) []string {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil || names == nil {
		return []string{}
	}
	return names
}

func recipePrompt(ingredients []ingredient) string {
	return fmt.Sprintf(
		"Kamu adalah koki rumahan. Buatkan satu resep masakan sederhana dalam bahasa Indonesia "+
			"menggunakan bahan berikut beserta jumlahnya: %s. "+
			"Sertakan nama masakan, daftar bahan, dan langkah memasak bernomor. "+
			"Jangan gunakan format markdown.",
		strings.Join(ingredientLabels(ingredients), ", "),
	)
}

func fertilizerPrompt(ingredients []ingredient) string {
	return fmt.Sprintf(
		"Kamu adalah ahli pengomposan. Jelaskan dalam bahasa Indonesia cara mengolah sisa makanan berikut "+
			"beserta jumlahnya menjadi pupuk organik: %s. "+
			"Sertakan bahan tambahan yang dibutuhkan, langkah pembuatan bernomor, dan lama fermentasi. "+
			"Jangan gunakan format markdown.",
		strings.Join(ingredientLabels(ingredients), ", "),
	)
}
