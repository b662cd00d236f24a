package domain

import (
	"errors"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetFoodItem       = "food item retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetFoodItem       = "failed to retrieve food item"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		ExpiryDate string `json:"expiry_date" validate:"required,expiry_date"`
		Quantity   int    `json:"quantity" validate:"min=0"`
		CategoryID uint   `json:"category_id" validate:"required"`
	}

	UpdateFoodItemRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty,expiry_date"`
		Quantity   *int   `json:"quantity" validate:"omitempty,min=0"`
		CategoryID uint   `json:"category_id" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID           uint          `json:"id"`
		Name         string        `json:"name"`
		ExpiryDate   string        `json:"expiry_date"`
		Quantity     int           `json:"quantity"`
		CategoryName string        `json:"category_name"`
		Status       *ExpiryStatus `json:"expiry_status,omitempty"`
	}

	GroupedFoodItemsResponse struct {
		Expired []FoodItemResponse `json:"expired"`
		Warning []FoodItemResponse `json:"warning"`
		Fresh   []FoodItemResponse `json:"fresh"`
		Total   int                `json:"total"`
	}

	DashboardStatsResponse struct {
		TotalItems   int `json:"total_items"`
		FreshItems   int `json:"fresh_items"`
		WarningItems int `json:"warning_items"`
		ExpiredItems int `json:"expired_items"`
		// foods whose expiry date could not be read; also counted as fresh
		UnknownExpiryItems int `json:"unknown_expiry_items"`
	}

	AdminFoodItemResponse struct {
		FoodItemResponse
		UserID uint `json:"user_id"`
	}
)
