package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/economy"
)

// Validation tags
const (
	TagUnit     = "unit"
	TagBuyMode  = "buymode"
	TagPlayerID = "required,max=64,printascii,excludesall=/?#%"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation(TagUnit, validateUnit)
	_ = v.RegisterValidation(TagBuyMode, validateBuyMode)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag expression
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagUnit:
			errs[field] = ErrMsgUnknownUnitError
		case TagBuyMode:
			errs[field] = ErrMsgInvalidBuyModeError
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateUnit(fl validator.FieldLevel) bool {
	return domain.UnitType(strings.ToLower(fl.Field().String())).IsValid()
}

// Empty is allowed and means a single unit
func validateBuyMode(fl validator.FieldLevel) bool {
	_, err := economy.ParseBuyMode(fl.Field().String())
	return err == nil
}
