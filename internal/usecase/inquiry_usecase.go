package usecase

import (
	"context"
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type inquiryUsecase struct {
	validate   *validator.Validate
	dispatcher domain.NotificationDispatcher
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(validate *validator.Validate, dispatcher domain.NotificationDispatcher) domain.InquiryUsecase {
	return &inquiryUsecase{
		validate:   validate,
		dispatcher: dispatcher,
	}
}

// Submit validates the inquiry and runs the dispatch pipeline in order:
// operator notice, acknowledgement, client notice. An operator notice that
// was already sent is not undone when the client notice fails.
func (uc *inquiryUsecase) Submit(ctx context.Context, inquiry *domain.Inquiry) error {
	if err := ValidateInquiry(uc.validate, inquiry); err != nil {
		return err
	}

	// Dispatch runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	if err := uc.dispatcher.SendInternalNotice(ctx, inquiry); err != nil {
		logger.Log.Error("Operator notice failed", "project_type", inquiry.ProjectType, "error", err)
		return err
	}
	logger.Log.Info("Operator notice sent", "project_type", inquiry.ProjectType)

	acknowledgement := uc.dispatcher.GenerateAcknowledgement(ctx, inquiry)

	if err := uc.dispatcher.SendClientNotice(ctx, inquiry, acknowledgement); err != nil {
		logger.Log.Error("Client notice failed after operator notice was sent", "project_type", inquiry.ProjectType, "error", err)
		return err
	}
	logger.Log.Info("Client notice sent", "project_type", inquiry.ProjectType)

	return nil
}
