package handlers

import (
	"SaveBite/domain"
	"SaveBite/internal/api/presenters"
	"SaveBite/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GenerateRecipe(c *fiber.Ctx) error
		GenerateFertilizer(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetFertilizers(c *fiber.Ctx) error
		DeleteFertilizer(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) bindGenerateRequest(c *fiber.Ctx) (*domain.GenerateRequest, error) {
	req := new(domain.GenerateRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, err
	}

	if len(req.Ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *recipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	req, err := h.bindGenerateRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, err)
	}

	res, err := h.recipeService.GenerateRecipe(c.UserContext(), auth, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGenerateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}

func (h *recipeHandler) GenerateFertilizer(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	req, err := h.bindGenerateRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateFertilizer, err)
	}

	res, err := h.recipeService.GenerateFertilizer(c.UserContext(), auth, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGenerateFertilizer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateFertilizer)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	recipes, err := h.recipeService.GetRecipes(c.UserContext(), auth)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	recipeID, err := paramID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.UserContext(), auth, recipeID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetFertilizers(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	fertilizers, err := h.recipeService.GetFertilizers(c.UserContext(), auth)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetFertilizers, err)
	}

	return presenters.SuccessResponse(c, fertilizers, fiber.StatusOK, domain.MessageSuccessGetFertilizers)
}

func (h *recipeHandler) DeleteFertilizer(c *fiber.Ctx) error {
	auth, err := authContext(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
	}

	fertilizerID, err := paramID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFertilizer, err)
	}

	if err := h.recipeService.DeleteFertilizer(c.UserContext(), auth, fertilizerID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedDeleteFertilizer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFertilizer)
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetAllRecipes(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
