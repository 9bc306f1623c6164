// Package validator wraps go-playground/validator with the console's custom
// tags and turns its failures into per-field domain validation errors.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Custom tags.
const (
	TagDecimalGTE0 = "decimal_gte0"
	TagIntGTE0     = "int_gte0"
	TagUzPhone     = "uzphone"
)

// Validator validates request structs. It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags registered. Field names in
// errors come from the form tag, then the json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagDecimalGTE0, isNonNegativeDecimal)
	_ = v.RegisterValidation(TagIntGTE0, isNonNegativeInt)
	_ = v.RegisterValidation(TagUzPhone, isUzPhone)

	return &Validator{validate: v}
}

// Validate checks i and returns *domainerrors.ValidationError on field
// failures.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	result := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}

	return result.OrNil()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}

		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}

		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "nefield":
		return "Must differ from the current value"
	case "eqfield":
		return "Values do not match"
	case "mongodb":
		return "Malformed identifier"
	case TagDecimalGTE0:
		return "Must be a number greater than or equal to 0"
	case TagIntGTE0:
		return "Must be a whole number greater than or equal to 0"
	case TagUzPhone:
		return "Phone number must be +998 followed by 9 digits"
	default:
		return "Invalid value"
	}
}

func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return !d.IsNegative()
}

func isNonNegativeInt(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))

	return err == nil && n >= 0
}

func isUzPhone(fl validator.FieldLevel) bool {
	_, ok := util.NormalizePhone(fl.Field().String())

	return ok
}
