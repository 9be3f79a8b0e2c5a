// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fincontrol/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("category", validateCategory)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return models.IsValidDate(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	c := models.Category(fl.Field().String())
	for _, known := range models.Categories {
		if known == c {
			return true
		}
	}
	return false
}
