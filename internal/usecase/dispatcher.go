package usecase

import (
	"context"
	"fmt"
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/pkg/email"
	"project-inquiry-backend/pkg/logger"
	"strings"
)

const acknowledgementSystemPrompt = "You are an assistant helping a user craft a friendly, warm, and professional " +
	"auto-reply email. The tone should be polite, human, and engaging, with a personal touch."

const acknowledgementUserPrompt = "Please write a warm, professional, and appreciative auto-reply message that " +
	"acknowledges the following details of a project inquiry: %s, %s, and %s. The response should assure the " +
	"sender that their inquiry is being processed, without including a subject line, greeting, closing signature, " +
	"or the sender's name, position, or contact information. Avoid using the phrase 'Thank you for reaching out " +
	"and sharing the details of your project inquiry.' Instead, directly address the specifics of the project in " +
	"a friendly and clear manner."

// Mailer delivers one composed email through the outbound relay
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// TextGenerator returns one completion for a system and a user prompt
type TextGenerator interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DispatcherConfig is the read-only configuration of the dispatcher
type DispatcherConfig struct {
	OperatorEmail string // fixed mailbox receiving operator notices
	Signature     string
	FallbackReply string
}

type notificationDispatcher struct {
	cfg       DispatcherConfig
	mailer    Mailer
	generator TextGenerator
}

// NewNotificationDispatcher creates the three-step outbound pipeline
func NewNotificationDispatcher(cfg DispatcherConfig, mailer Mailer, generator TextGenerator) domain.NotificationDispatcher {
	return &notificationDispatcher{
		cfg:       cfg,
		mailer:    mailer,
		generator: generator,
	}
}

// SendInternalNotice emails every submitted field to the operator mailbox
func (d *notificationDispatcher) SendInternalNotice(ctx context.Context, inquiry *domain.Inquiry) error {
	msg, err := ComposeOperatorNotice(d.cfg, inquiry)
	if err != nil {
		return &domain.DispatchError{Stage: domain.StageOperatorNotice, Err: err}
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		return &domain.DispatchError{Stage: domain.StageOperatorNotice, Err: err}
	}
	return nil
}

// GenerateAcknowledgement asks the generation service for a personalised
// acknowledgement and returns it unchanged. Any failure, or a blank
// completion, is absorbed and the fallback returned.
func (d *notificationDispatcher) GenerateAcknowledgement(ctx context.Context, inquiry *domain.Inquiry) string {
	text, err := d.generator.CompleteWithSystem(ctx, acknowledgementSystemPrompt, AcknowledgementPrompt(inquiry))
	if err != nil {
		logger.Log.Warn("Acknowledgement generation failed, using fallback reply", "error", err)
		return d.cfg.FallbackReply
	}
	if strings.TrimSpace(text) == "" {
		logger.Log.Warn("Acknowledgement generation returned empty text, using fallback reply")
		return d.cfg.FallbackReply
	}
	return text
}

// SendClientNotice emails the acknowledgement back to the submitter
func (d *notificationDispatcher) SendClientNotice(ctx context.Context, inquiry *domain.Inquiry, acknowledgement string) error {
	msg, err := ComposeClientNotice(d.cfg, inquiry, acknowledgement)
	if err != nil {
		return &domain.DispatchError{Stage: domain.StageClientNotice, Err: err}
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		return &domain.DispatchError{Stage: domain.StageClientNotice, Err: err}
	}
	return nil
}

// AcknowledgementPrompt builds the user prompt from additional information,
// project type and service category.
func AcknowledgementPrompt(inquiry *domain.Inquiry) string {
	return fmt.Sprintf(acknowledgementUserPrompt,
		orNotProvided(inquiry.AdditionalInformation),
		strings.TrimSpace(inquiry.ProjectType),
		strings.TrimSpace(inquiry.ServiceCategory),
	)
}

// ComposeOperatorNotice builds the operator notice for inquiry
func ComposeOperatorNotice(cfg DispatcherConfig, inquiry *domain.Inquiry) (email.Message, error) {
	text, html, err := email.RenderOperatorNotice(email.OperatorNoticeData{
		Name:                  strings.TrimSpace(inquiry.FromName),
		ClientName:            strings.TrimSpace(inquiry.ClientFirstName) + " " + strings.TrimSpace(inquiry.ClientLastName),
		Email:                 strings.TrimSpace(inquiry.ClientEmail),
		Country:               strings.TrimSpace(inquiry.ClientCountry),
		Location:              orNotProvided(inquiry.ClientLocation),
		Language:              strings.TrimSpace(inquiry.ClientLanguage),
		ProjectType:           strings.TrimSpace(inquiry.ProjectType),
		ServiceCategory:       strings.TrimSpace(inquiry.ServiceCategory),
		Website:               orNotProvided(inquiry.ClientWebsite),
		AdditionalInformation: orNotProvided(inquiry.AdditionalInformation),
	})
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		FromName: strings.TrimSpace(inquiry.FromName),
		To:       cfg.OperatorEmail,
		ReplyTo:  strings.TrimSpace(inquiry.ClientEmail),
		Subject:  "New Project Inquiry: " + strings.TrimSpace(inquiry.ProjectType),
		Text:     text,
		HTML:     html,
	}, nil
}

// ComposeClientNotice wraps acknowledgement in the fixed client template
func ComposeClientNotice(cfg DispatcherConfig, inquiry *domain.Inquiry, acknowledgement string) (email.Message, error) {
	firstName := strings.TrimSpace(inquiry.ClientFirstName)

	text, html, err := email.RenderClientNotice(email.ClientNoticeData{
		FirstName:       firstName,
		Acknowledgement: acknowledgement,
		Signature:       cfg.Signature,
	})
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		To:      strings.TrimSpace(inquiry.ClientEmail),
		Subject: "Thank you for your inquiry, " + firstName,
		Text:    text,
		HTML:    html,
	}, nil
}

func orNotProvided(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return email.NotProvided
	}
	return v
}
