package usecase

import (
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ValidateInquiry rejects an inquiry whose required fields are missing or
// blank. The returned error always matches domain.ErrMissingFields.
func ValidateInquiry(v *validator.Validate, inquiry *domain.Inquiry) error {
	if inquiry == nil {
		return &domain.ValidationError{}
	}
	if err := v.Struct(inquiry); err != nil {
		return &domain.ValidationError{Fields: validation.FailedFields(err)}
	}
	return nil
}
