package email

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"strings"
	"testing"
	"time"

	"project-inquiry-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseParts(t *testing.T, raw []byte) (*mail.Message, map[string]string) {
	t.Helper()

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/alternative", mediaType)

	parts := map[string]string{}
	mr := multipart.NewReader(msg.Body, params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		body, err := io.ReadAll(p)
		require.NoError(t, err)
		ct, _, _ := mime.ParseMediaType(p.Header.Get("Content-Type"))
		parts[ct] = string(body)
	}
	return msg, parts
}

func TestBuildMIME(t *testing.T) {
	date := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	raw, err := BuildMIME("relay@example.com", Message{
		FromName: "Jane",
		To:       "owner@example.com",
		ReplyTo:  "jane@x.com",
		Subject:  "New Project Inquiry: Website",
		Text:     "plain body with a long line that is definitely longer than seventy six characters so it must wrap",
		HTML:     "<p>html body</p>",
	}, date)
	require.NoError(t, err)

	msg, parts := parseParts(t, raw)

	assert.Equal(t, `"Jane" <relay@example.com>`, msg.Header.Get("From"))
	assert.Equal(t, "owner@example.com", msg.Header.Get("To"))
	assert.Equal(t, "jane@x.com", msg.Header.Get("Reply-To"))
	assert.Equal(t, "New Project Inquiry: Website", msg.Header.Get("Subject"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))
	assert.Equal(t, date.Format(time.RFC1123Z), msg.Header.Get("Date"))

	assert.Equal(t, "plain body with a long line that is definitely longer than seventy six characters so it must wrap", parts["text/plain"])
	assert.Equal(t, "<p>html body</p>", parts["text/html"])
}

func TestBuildMIMEStripsHeaderInjection(t *testing.T) {
	raw, err := BuildMIME("relay@example.com", Message{
		FromName: "Eve\r\nBcc: victim@example.com",
		To:       "owner@example.com",
		Subject:  "Hello\r\nBcc: victim@example.com",
	}, time.Now())
	require.NoError(t, err)

	msg, _ := parseParts(t, raw)
	assert.Empty(t, msg.Header.Get("Bcc"))
	assert.Empty(t, msg.Header.Get("Reply-To"))
}

func TestBuildMIMEEncodesUnicodeSubject(t *testing.T) {
	raw, err := BuildMIME("relay@example.com", Message{
		To:      "owner@example.com",
		Subject: "Thank you for your inquiry, Zoë",
		Text:    "Grüße",
	}, time.Now())
	require.NoError(t, err)

	msg, parts := parseParts(t, raw)
	dec := new(mime.WordDecoder)
	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your inquiry, Zoë", subject)
	assert.Equal(t, "Grüße", parts["text/plain"])
}

func TestSendNotConfigured(t *testing.T) {
	svc := NewEmailService(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587"})
	assert.False(t, svc.IsConfigured())

	err := svc.Send(context.Background(), Message{To: "jane@x.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendRejectsInvalidRecipient(t *testing.T) {
	svc := NewEmailService(&config.Config{
		SMTPHost:      "127.0.0.1",
		SMTPPort:      "2525",
		SMTPUsername:  "user",
		SMTPPassword:  "pass",
		SMTPFromEmail: "relay@example.com",
	})

	err := svc.Send(context.Background(), Message{To: "not an address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}

func TestSendRelayUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, ln.Close())

	svc := NewEmailService(&config.Config{
		SMTPHost:      "127.0.0.1",
		SMTPPort:      port,
		SMTPUsername:  "user",
		SMTPPassword:  "pass",
		SMTPFromEmail: "relay@example.com",
		SMTPTimeout:   time.Second,
	})

	err = svc.Send(context.Background(), Message{To: "jane@x.com", Subject: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to smtp relay")
}
