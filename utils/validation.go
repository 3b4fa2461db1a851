package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their json names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// ValidateDto checks s against its validate tags. Failures wrap
// ErrHttpBadRequest and name every offending field.
func ValidateDto(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating request: %w", err)
	}

	messages := MapSlice(validationErrors, func(fieldErr validator.FieldError) string {
		if fieldErr.Param() == "" {
			return fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag())
		}
		return fmt.Sprintf("%s failed %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param())
	})

	return fmt.Errorf("invalid request: %s: %w", strings.Join(messages, ", "), ErrHttpBadRequest)
}
