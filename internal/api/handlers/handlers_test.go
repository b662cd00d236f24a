package handlers

import (
	"SaveBite/domain"
	"SaveBite/internal/middleware"
	"SaveBite/internal/utils"
	"SaveBite/pkg/jwt"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodService struct {
	AddFoodItemFunc         func(ctx context.Context, auth domain.AuthContext, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
	GetGroupedFoodItemsFunc func(ctx context.Context, auth domain.AuthContext) (domain.GroupedFoodItemsResponse, error)
	GetFoodItemByIDFunc     func(ctx context.Context, auth domain.AuthContext, id uint) (domain.FoodItemResponse, error)
}

func (f *fakeFoodService) AddFoodItem(ctx context.Context, auth domain.AuthContext, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	return f.AddFoodItemFunc(ctx, auth, req)
}

func (f *fakeFoodService) UpdateFoodItem(context.Context, domain.AuthContext, uint, domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	return domain.FoodItemResponse{}, nil
}

func (f *fakeFoodService) DeleteFoodItem(context.Context, domain.AuthContext, uint) error {
	return nil
}

func (f *fakeFoodService) GetFoodItems(context.Context, domain.AuthContext) ([]domain.FoodItemResponse, error) {
	return nil, nil
}

func (f *fakeFoodService) GetGroupedFoodItems(ctx context.Context, auth domain.AuthContext) (domain.GroupedFoodItemsResponse, error) {
	return f.GetGroupedFoodItemsFunc(ctx, auth)
}

func (f *fakeFoodService) GetFoodItemByID(ctx context.Context, auth domain.AuthContext, id uint) (domain.FoodItemResponse, error) {
	return f.GetFoodItemByIDFunc(ctx, auth, id)
}

func (f *fakeFoodService) GetDashboardStats(context.Context, domain.AuthContext) (domain.DashboardStatsResponse, error) {
	return domain.DashboardStatsResponse{}, nil
}

func (f *fakeFoodService) GetAllFoodItems(context.Context) ([]domain.AdminFoodItemResponse, error) {
	return nil, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setup(t *testing.T, foods *fakeFoodService) (*fiber.App, string) {
	t.Helper()
	utils.InitValidator()

	jwtService := jwt.NewJWTService("secret")
	token, err := jwtService.GenerateTokenUser(5, domain.RoleUser)
	require.NoError(t, err)

	h := NewFoodHandler(foods, utils.Validate)
	app := fiber.New()
	group := app.Group("/foods", middleware.NewMiddleware().AuthMiddleware(jwtService))
	group.Get("/grouped", h.GetGroupedFoodItems)
	group.Get("/:id", h.GetFoodItemDetails)
	group.Post("", h.AddFoodItem)
	return app, token
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestFoodHandler_AddFoodItem(t *testing.T) {
	var got domain.AddFoodItemRequest
	var gotAuth domain.AuthContext
	foods := &fakeFoodService{
		AddFoodItemFunc: func(_ context.Context, auth domain.AuthContext, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
			got, gotAuth = req, auth
			return domain.FoodItemResponse{ID: 1, Name: req.Name, ExpiryDate: req.ExpiryDate}, nil
		},
	}
	app, token := setup(t, foods)

	status, env := do(t, app, http.MethodPost, "/foods", token,
		`{"name":"Susu","expiry_date":"2025-01-20","quantity":2,"category_id":3}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Status)
	assert.Equal(t, "Susu", got.Name)
	assert.Equal(t, uint(5), gotAuth.UserID)

	status, env = do(t, app, http.MethodPost, "/foods", token,
		`{"name":"Susu","expiry_date":"besok","quantity":2,"category_id":3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Status)
	assert.Equal(t, domain.MessageFailedAddFoodItem, env.Message)
}

func TestFoodHandler_GetGroupedFoodItems(t *testing.T) {
	foods := &fakeFoodService{
		GetGroupedFoodItemsFunc: func(context.Context, domain.AuthContext) (domain.GroupedFoodItemsResponse, error) {
			return domain.GroupedFoodItemsResponse{
				Expired: []domain.FoodItemResponse{{ID: 1, Name: "Roti"}},
				Warning: []domain.FoodItemResponse{},
				Fresh:   []domain.FoodItemResponse{{ID: 2, Name: "Beras"}},
				Total:   2,
			}, nil
		},
	}
	app, token := setup(t, foods)

	status, env := do(t, app, http.MethodGet, "/foods/grouped", token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Status)
	assert.Equal(t, domain.MessageSuccessGetFoodItems, env.Message)
	assert.Empty(t, env.Error)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	for _, key := range []string{"expired", "warning", "fresh", "total"} {
		assert.Contains(t, raw, key)
	}

	var groups domain.GroupedFoodItemsResponse
	require.NoError(t, json.Unmarshal(env.Data, &groups))
	assert.Equal(t, 2, groups.Total)
	assert.Equal(t, "Roti", groups.Expired[0].Name)
	assert.Empty(t, groups.Warning)
}

func TestFoodHandler_AddFoodItemInvalidExpiryFromService(t *testing.T) {
	foods := &fakeFoodService{
		AddFoodItemFunc: func(context.Context, domain.AuthContext, domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		},
	}
	app, token := setup(t, foods)

	status, env := do(t, app, http.MethodPost, "/foods", token,
		`{"name":"Susu","expiry_date":"2025-01-20","quantity":2,"category_id":3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Status)
	assert.Equal(t, domain.MessageFailedAddFoodItem, env.Message)
	assert.Equal(t, domain.ErrInvalidExpiryDate.Error(), env.Error)
}

func TestFoodHandler_AdminRouteRejectsUserRole(t *testing.T) {
	utils.InitValidator()
	jwtService := jwt.NewJWTService("secret")
	m := middleware.NewMiddleware()
	h := NewFoodHandler(&fakeFoodService{}, utils.Validate)

	app := fiber.New()
	admin := app.Group("/admin", m.AuthMiddleware(jwtService), m.AdminOnly())
	admin.Get("/foods", h.GetAllFoodItems)

	userToken, err := jwtService.GenerateTokenUser(5, domain.RoleUser)
	require.NoError(t, err)
	status, env := do(t, app, http.MethodGet, "/admin/foods", userToken, "")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Status)
	assert.Equal(t, domain.ErrUserNotAllowed.Error(), env.Error)

	adminToken, err := jwtService.GenerateTokenUser(1, domain.RoleAdmin)
	require.NoError(t, err)
	status, env = do(t, app, http.MethodGet, "/admin/foods", adminToken, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Status)
}

func TestFoodHandler_GetFoodItemDetails(t *testing.T) {
	foods := &fakeFoodService{
		GetFoodItemByIDFunc: func(_ context.Context, _ domain.AuthContext, id uint) (domain.FoodItemResponse, error) {
			if id == 9 {
				return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
			}
			return domain.FoodItemResponse{ID: id}, nil
		},
	}
	app, token := setup(t, foods)

	status, _ := do(t, app, http.MethodGet, "/foods/4", token, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, env := do(t, app, http.MethodGet, "/foods/9", token, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, domain.ErrFoodItemNotFound.Error(), env.Error)

	status, _ = do(t, app, http.MethodGet, "/foods/abc", token, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRecipeHandler_EmptySelection(t *testing.T) {
	utils.InitValidator()
	jwtService := jwt.NewJWTService("secret")
	token, err := jwtService.GenerateTokenUser(5, domain.RoleUser)
	require.NoError(t, err)

	h := NewRecipeHandler(nil, utils.Validate)
	app := fiber.New()
	app.Post("/recipe", middleware.NewMiddleware().AuthMiddleware(jwtService), h.GenerateRecipe)

	status, env := do(t, app, http.MethodPost, "/recipe", token, `{"ingredients":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.MessageFailedGenerateRecipe, env.Message)
	assert.Equal(t, domain.ErrNoIngredients.Error(), env.Error)
}
