package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("period", validatePeriod)
	_ = v.RegisterValidation("horizon", validateHorizon)
	_ = v.RegisterValidation("sheetname", validateSheetName)
	_ = v.RegisterValidation("money", validateMoney)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePeriod accepts the reporting windows the dashboard can render
func validatePeriod(fl validator.FieldLevel) bool {
	return models.IsValidPeriod(fl.Field().String())
}

// validateHorizon accepts the horizons a budget amount can be entered at.
// Horizons and periods share the same value set; the separate tag keeps
// budget error messages talking about horizons.
func validateHorizon(fl validator.FieldLevel) bool {
	return models.IsValidPeriod(fl.Field().String())
}

// sheetNameForbidden matches the characters Google Sheets rejects in tab names
var sheetNameForbidden = regexp.MustCompile(`[\[\]*?:/\\]`)

// validateSheetName validates a spreadsheet tab name
// Rules: non-blank, at most 100 characters, none of [ ] * ? : / \
func validateSheetName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || len(name) > 100 {
		return false
	}
	return !sheetNameForbidden.MatchString(name)
}

// moneyPattern matches a non-negative decimal amount with at most 2 decimal places
var moneyPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// validateMoney validates that an amount string is a non-negative decimal
// with at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	return moneyPattern.MatchString(fl.Field().String())
}
