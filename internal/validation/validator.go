// Package validation validates service inputs with validator/v10 and converts
// failures into *domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the application's custom tags registered:
//
//	username  lowercase handle accepted by domain.CheckUsername
//	theme     a valid domain.Theme
//	notblank  a string that is not only whitespace
//	http_url_or_empty  an absolute http(s) URL, or "" to clear a field
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		name, _, _ = strings.Cut(name, ",")
		if name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return domain.CheckUsername(fl.Field().String()) == ""
	})
	mustRegister(v, "theme", func(fl validator.FieldLevel) bool {
		return domain.Theme(fl.Field().String()).IsValid()
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	mustRegister(v, "http_url_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "http_url") == nil
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Validate validates a struct and returns a *domain.ValidationError listing
// every failed field.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make([]domain.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   fieldPath(e),
			Message: friendlyMessage(e),
		})
	}
	return domain.NewValidationErrors(fieldErrors)
}

// fieldPath drops the top-level struct name from the namespace, so nested
// fields read "item_ids[2]" rather than "ReorderInput.item_ids[2]".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "required"
	case "email":
		return "invalid email format"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s entries", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s entries", e.Param())
		}
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "http_url", "http_url_or_empty", "url":
		return "must be a valid http(s) URL"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "unique":
		return "must not contain duplicates"
	case "username":
		if s, ok := e.Value().(string); ok {
			return domain.CheckUsername(s)
		}
		return "is invalid"
	case "theme":
		return "must be one of: dark light"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}
