package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Inquiry represents a project inquiry form submission. It only lives for
// the duration of a single request.
type Inquiry struct {
	FromName              string `json:"fromName" validate:"notblank" example:"Jane"`
	ClientFirstName       string `json:"clientFirstName" validate:"notblank" example:"Jane"`
	ClientLastName        string `json:"clientLastName" validate:"notblank" example:"Doe"`
	ClientEmail           string `json:"clientEmail" validate:"notblank" example:"jane@example.com"`
	ClientCountry         string `json:"clientCountry" validate:"notblank" example:"US"`
	ClientLocation        string `json:"clientLocation,omitempty" example:"Austin, TX"`
	ClientLanguage        string `json:"clientLanguage" validate:"notblank" example:"English"`
	ProjectType           string `json:"projectType" validate:"notblank" example:"Website"`
	ServiceCategory       string `json:"serviceCategory" validate:"notblank" example:"Design"`
	ClientWebsite         string `json:"clientWebsite,omitempty" example:"https://example.com"`
	AdditionalInformation string `json:"additionalInformation,omitempty" example:"We need a portfolio site"`
}

// DispatchStage names the outbound step that failed
type DispatchStage string

const (
	StageOperatorNotice DispatchStage = "operator_notice"
	StageClientNotice   DispatchStage = "client_notice"
)

var (
	// ErrMissingFields is the single reason an Inquiry is rejected
	ErrMissingFields = errors.New("missing required fields")
	// ErrDispatch marks a failed operator or client notice
	ErrDispatch = errors.New("notification dispatch failed")
)

// ValidationError lists the offending fields for server-side logs only.
// Callers see ErrMissingFields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrMissingFields.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingFields.Error(), strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields
}

// DispatchError wraps a mail relay failure with the stage it happened in
type DispatchError struct {
	Stage DispatchStage
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDispatch.Error(), e.Stage, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatch
}

// InquiryUsecase defines the interface for inquiry submission
type InquiryUsecase interface {
	// Submit validates the inquiry, notifies the operator and sends the
	// generated acknowledgement to the client, in that order.
	Submit(ctx context.Context, inquiry *Inquiry) error
}

// NotificationDispatcher is the three-step outbound pipeline for a
// validated Inquiry.
type NotificationDispatcher interface {
	SendInternalNotice(ctx context.Context, inquiry *Inquiry) error
	// GenerateAcknowledgement never fails; errors yield the fallback text.
	GenerateAcknowledgement(ctx context.Context, inquiry *Inquiry) string
	SendClientNotice(ctx context.Context, inquiry *Inquiry, acknowledgement string) error
}
