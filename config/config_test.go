package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("EMAIL_USER", "owner@example.com")
	t.Setenv("EMAIL_PASS", "app-password")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "465", cfg.SMTPPort)
	assert.Equal(t, "owner@example.com", cfg.SMTPUsername)
	assert.Equal(t, "owner@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, "owner@example.com", cfg.ContactEmailTo)
	assert.Equal(t, "app-password", cfg.SMTPPassword)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, DefaultFallbackReply, cfg.FallbackReply)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 20*time.Second, cfg.LLMTimeout)
	assert.False(t, cfg.RateLimitFailClosed)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SMTP_USERNAME", "relay-login")
	t.Setenv("SMTP_FROM_EMAIL", "hello@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "sales@example.com")
	t.Setenv("LLM_PROVIDER", " Gemini ")
	t.Setenv("LLM_TIMEOUT", "7")
	t.Setenv("SMTP_TIMEOUT", "1500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1/")
	t.Setenv("RATE_LIMIT_INQUIRY_THRESHOLD", "not-a-number")
	t.Setenv("RATE_LIMIT_FAIL_CLOSED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "hello@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, "sales@example.com", cfg.ContactEmailTo)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 7*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.SMTPTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://localhost:9999/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 5, cfg.RateLimitInquiryThreshold)
	assert.True(t, cfg.RateLimitFailClosed)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG_ON", " 1 ")
	t.Setenv("FLAG_BAD", "sometimes")
	assert.True(t, getEnvBool("FLAG_ON", false))
	assert.True(t, getEnvBool("FLAG_BAD", true))
	assert.False(t, getEnvBool("FLAG_UNSET", false))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{GinMode: "release"}).IsProduction())
	assert.False(t, (&Config{GinMode: "debug"}).IsProduction())
}
