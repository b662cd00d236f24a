package utils

import (
	"SaveBite/pkg/expiry"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator builds the shared validator. It panics if a custom tag cannot
// be registered, since every request would then fail validation.
func InitValidator() {
	Validate = validator.New()
	if err := Validate.RegisterValidation("expiry_date", validateExpiryDate); err != nil {
		panic(fmt.Sprintf("register expiry_date validation: %v", err))
	}
}

// validateExpiryDate accepts the date formats the classifier can read.
func validateExpiryDate(fl validator.FieldLevel) bool {
	_, err := expiry.ParseDate(fl.Field().String(), time.UTC)
	return err == nil
}
