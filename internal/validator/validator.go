// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"butce/internal/calendar"
	"butce/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// displayTags are the named colors the presentation layer knows how to render.
var displayTags = map[string]bool{
	"primary": true, "secondary": true, "success": true, "danger": true,
	"warning": true, "info": true, "light": true, "dark": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("display_color", validateDisplayColor)
	_ = v.RegisterValidation("flex_date", validateFlexDate)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

// validateDisplayColor accepts an empty value, a named display tag, or a hex color.
func validateDisplayColor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || displayTags[s] || hexColorRegex.MatchString(s)
}

// validateFlexDate accepts an empty value or a date in any supported layout.
func validateFlexDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := calendar.ParseDate(s)
	return ok
}
