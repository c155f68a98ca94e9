package services

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/travel-admin/internal/errs"
)

// NewValidator returns the struct validator shared by the services. Field
// names in messages follow the json tags the panel sends.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rating", validateRating)
	return v
}

// validateRating accepts a decimal star rating between 0 and 5.
func validateRating(fl validator.FieldLevel) bool {
	r, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err == nil && r >= 0 && r <= 5
}

// validateStruct runs v and converts the first failure into a ValidationError.
func validateStruct(v *validator.Validate, data any) error {
	err := v.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewValidationError(err.Error())
	}
	return errs.NewValidationError(fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "rating":
		return field + " must be a number between 0 and 5"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
