package domain

import (
	"errors"
	"time"
)

type ExpiryTag string

const (
	ExpiryFresh   ExpiryTag = "fresh"
	ExpiryWarning ExpiryTag = "warning"
	ExpiryExpired ExpiryTag = "expired"
)

var ErrInvalidExpiryDate = errors.New("invalid expiry date")

type (
	// FoodRecord is the read-only view of a food item the classifier and
	// reminder scheduler work on.
	FoodRecord struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		ExpiryDate   string `json:"expiry_date"`
		Quantity     int    `json:"quantity"`
		CategoryName string `json:"category_name"`
	}

	ExpiryStatus struct {
		Tag           ExpiryTag `json:"status"`
		DaysRemaining int       `json:"days_remaining"`
		Message       string    `json:"message"`
		Color         string    `json:"color"`
	}

	// ExpiryGroups holds foods bucketed by status. Display order is
	// Expired, Warning, Fresh.
	ExpiryGroups struct {
		Expired []FoodRecord `json:"expired"`
		Warning []FoodRecord `json:"warning"`
		Fresh   []FoodRecord `json:"fresh"`
	}

	ReminderFood struct {
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date"`
	}

	ReminderTime struct {
		Name   string    `json:"name"`
		FireAt time.Time `json:"fire_at"`
	}
)

func (g ExpiryGroups) Len() int {
	return len(g.Expired) + len(g.Warning) + len(g.Fresh)
}
