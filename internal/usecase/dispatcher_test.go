package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"project-inquiry-backend/internal/usecase"
	"project-inquiry-backend/pkg/email"
	"project-inquiry-backend/pkg/llm"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dispatcherCfg = usecase.DispatcherConfig{
	OperatorEmail: operatorMailbox,
	Signature:     "Jane Smith\nStudio North",
	FallbackReply: fallbackReply,
}

func TestComposeOperatorNotice(t *testing.T) {
	inquiry := validInquiry()
	inquiry.ClientWebsite = "https://jane.example"
	inquiry.AdditionalInformation = "<script>alert(1)</script>"

	msg, err := usecase.ComposeOperatorNotice(dispatcherCfg, inquiry)
	require.NoError(t, err)

	want := email.Message{
		FromName: "Jane",
		To:       operatorMailbox,
		ReplyTo:  "jane@x.com",
		Subject:  "New Project Inquiry: Website",
	}
	if diff := cmp.Diff(want, msg, cmpopts.IgnoreFields(email.Message{}, "Text", "HTML")); diff != "" {
		t.Errorf("operator notice mismatch (-want +got):\n%s", diff)
	}

	for _, line := range []string{
		"Name: Jane",
		"Client: Jane Doe",
		"Email: jane@x.com",
		"Country: US",
		"Location: N/A",
		"Language: English",
		"Project Type: Website",
		"Service Category: Design",
		"Client Website: https://jane.example",
	} {
		assert.Contains(t, msg.Text, line+"\n")
	}
	assert.Contains(t, msg.Text, "Additional Information:\n<script>alert(1)</script>")

	assert.Contains(t, msg.HTML, "Design")
	assert.NotContains(t, msg.HTML, "<script>", "html part escapes user input")
}

func TestComposeClientNotice(t *testing.T) {
	ack := "We love the idea of a fresh website.\n\nOur designers will review it this week."

	msg, err := usecase.ComposeClientNotice(dispatcherCfg, validInquiry(), ack)
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "Thank you for your inquiry, Jane", msg.Subject)

	assert.True(t, strings.HasPrefix(msg.Text, "Hi Jane,\n\n"))
	assert.Contains(t, msg.Text, "\n\n"+ack+"\n\n")
	assert.True(t, strings.HasSuffix(msg.Text, "Best regards,\nJane Smith\nStudio North\n"))

	assert.Contains(t, msg.HTML, "<h3>Hi Jane,</h3>")
	assert.Contains(t, msg.HTML, "<p>We love the idea of a fresh website.</p>")
	assert.Contains(t, msg.HTML, "<p>Our designers will review it this week.</p>")
	assert.Contains(t, msg.HTML, "Jane Smith<br />Studio North")
}

func TestGenerateAcknowledgement(t *testing.T) {
	t.Run("returns generated text verbatim", func(t *testing.T) {
		generated := "Hello there.\n\n  Your   portfolio idea is great. "
		generator := new(MockGenerator)
		generator.On("CompleteWithSystem", mock.Anything, mock.Anything, mock.Anything).Return(generated, nil)

		d := usecase.NewNotificationDispatcher(dispatcherCfg, new(MockMailer), generator)
		assert.Equal(t, generated, d.GenerateAcknowledgement(context.Background(), validInquiry()))
	})

	t.Run("falls back on blank completion", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("CompleteWithSystem", mock.Anything, mock.Anything, mock.Anything).Return(" \n\t", nil)

		d := usecase.NewNotificationDispatcher(dispatcherCfg, new(MockMailer), generator)
		assert.Equal(t, fallbackReply, d.GenerateAcknowledgement(context.Background(), validInquiry()))
	})

	t.Run("falls back on error", func(t *testing.T) {
		generator := new(MockGenerator)
		generator.On("CompleteWithSystem", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

		d := usecase.NewNotificationDispatcher(dispatcherCfg, new(MockMailer), generator)
		assert.Equal(t, fallbackReply, d.GenerateAcknowledgement(context.Background(), validInquiry()))
	})
}

func TestAcknowledgementPrompt(t *testing.T) {
	inquiry := validInquiry()

	prompt := usecase.AcknowledgementPrompt(inquiry)
	assert.Contains(t, prompt, "N/A, Website, and Design")
	assert.Contains(t, prompt, "without including a subject line, greeting, closing signature")
}

func TestDispatcherCollaborators(t *testing.T) {
	assert.Implements(t, (*usecase.Mailer)(nil), new(email.EmailService))
	assert.Implements(t, (*usecase.TextGenerator)(nil), new(llm.OpenAIClient))
	assert.Implements(t, (*usecase.TextGenerator)(nil), new(llm.GeminiClient))
	assert.Implements(t, (*usecase.TextGenerator)(nil), llm.Disabled{})
}
