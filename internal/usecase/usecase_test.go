package usecase_test

import (
	"context"
	"testing"

	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/pkg/email"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Mock collaborators
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// Sent returns the messages passed to Send, in call order
func (m *MockMailer) Sent() []email.Message {
	var out []email.Message
	for _, call := range m.Calls {
		if call.Method == "Send" {
			out = append(out, call.Arguments.Get(1).(email.Message))
		}
	}
	return out
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

const (
	operatorMailbox = "owner@example.com"
	fallbackReply   = "Our team has received your inquiry and will be in touch soon."
)

func validInquiry() *domain.Inquiry {
	return &domain.Inquiry{
		FromName:        "Jane",
		ClientFirstName: "Jane",
		ClientLastName:  "Doe",
		ClientEmail:     "jane@x.com",
		ClientCountry:   "US",
		ClientLanguage:  "English",
		ProjectType:     "Website",
		ServiceCategory: "Design",
	}
}

func toOperator(msg email.Message) bool { return msg.To == operatorMailbox }
func toClient(msg email.Message) bool   { return msg.To == "jane@x.com" }
