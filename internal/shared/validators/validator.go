package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Describe joins the validation errors carried by err into one readable
// string such as "files (required), date (datetime=2006-01-02)".
// Errors that are not validation errors are returned as their message.
func Describe(err error) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}

	descriptions := make([]string, 0, len(ve))
	for _, e := range ve {
		descriptions = append(descriptions, describeField(e))
	}
	return strings.Join(descriptions, ", ")
}

func describeField(e FieldError) string {
	field := e.Field()

	// "Config.Log.Level" -> "log.level"
	if ns := e.StructNamespace(); ns != "" {
		parts := strings.Split(ns, ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof", "datetime":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
