// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendwise/internal/forecast"
	"spendwise/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("prediction_timeframe", validatePredictionTimeframe)
		_ = v.RegisterValidation("hsl_color", validateHSLColor)
		_ = v.RegisterValidation("icon_name", validateIconName)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateBudgetPeriod(fl validator.FieldLevel) bool {
	return models.ValidBudgetPeriod(models.BudgetPeriod(fl.Field().String()))
}

func validateFrequency(fl validator.FieldLevel) bool {
	return models.ValidFrequency(models.Frequency(fl.Field().String()))
}

func validatePredictionTimeframe(fl validator.FieldLevel) bool {
	return forecast.ValidTimeframe(forecast.Timeframe(fl.Field().String()))
}

func validateHSLColor(fl validator.FieldLevel) bool {
	return models.ValidHSLColor(fl.Field().String())
}

func validateIconName(fl validator.FieldLevel) bool {
	return models.ValidIcon(fl.Field().String())
}
