package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FailedFields returns the JSON names of the fields that failed validation.
// Non-validation errors yield nil.
func FailedFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, e.Field())
	}
	return fields
}
