package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"project-inquiry-backend/config"
	"strings"
	"time"
)

// ErrNotConfigured is returned by Send when SMTP credentials are missing
var ErrNotConfigured = errors.New("email service is not configured")

// Message is a single outbound email with plain-text and HTML alternatives
type Message struct {
	FromName string // display name, address is always the relay sender
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	timeout   time.Duration
	// implicitTLS dials TLS directly (SMTPS on 465) instead of STARTTLS
	implicitTLS bool
	tlsConfig   *tls.Config
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		timeout:   cfg.SMTPTimeout,

		implicitTLS: cfg.SMTPPort == "465",
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.fromEmail != ""
}

// Send delivers msg through the relay. Port 465 uses implicit TLS, any
// other port upgrades with STARTTLS when the server offers it.
func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	to, err := mail.ParseAddress(strings.TrimSpace(msg.To))
	if err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	raw, err := BuildMIME(s.fromEmail, msg, time.Now())
	if err != nil {
		return err
	}

	client, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp relay: %w", err)
	}
	defer client.Close()

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to.Address); err != nil {
		return fmt.Errorf("smtp RCPT TO failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return client.Quit()
}

func (s *EmailService) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)
	dialer := &net.Dialer{Timeout: s.timeout}

	var conn net.Conn
	var err error
	if s.implicitTLS {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    s.tlsClientConfig(),
		}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.timeout))
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if !s.implicitTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsClientConfig()); err != nil {
				client.Close()
				return nil, fmt.Errorf("starttls failed: %w", err)
			}
		}
	}

	return client, nil
}

func (s *EmailService) tlsClientConfig() *tls.Config {
	if s.tlsConfig != nil {
		return s.tlsConfig.Clone()
	}
	return &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}
}

// BuildMIME renders msg as a multipart/alternative RFC 5322 message
func BuildMIME(fromEmail string, msg Message, date time.Time) ([]byte, error) {
	from := mail.Address{Name: sanitizeHeader(msg.FromName), Address: fromEmail}

	var buf bytes.Buffer
	writeHeader := func(key, value string) {
		buf.WriteString(key + ": " + value + "\r\n")
	}

	writeHeader("From", from.String())
	writeHeader("To", sanitizeHeader(msg.To))
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", sanitizeHeader(msg.ReplyTo))
	}
	writeHeader("Subject", mime.QEncoding.Encode("UTF-8", sanitizeHeader(msg.Subject)))
	writeHeader("Date", date.Format(time.RFC1123Z))
	writeHeader("MIME-Version", "1.0")

	mw := multipart.NewWriter(&buf)
	writeHeader("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
	buf.WriteString("\r\n")

	if err := writePart(mw, "text/plain; charset=UTF-8", msg.Text); err != nil {
		return nil, err
	}
	if err := writePart(mw, "text/html; charset=UTF-8", msg.HTML); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(mw *multipart.Writer, contentType, body string) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Transfer-Encoding", "quoted-printable")

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", contentType, err)
	}

	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return fmt.Errorf("failed to encode %s part: %w", contentType, err)
	}
	return qp.Close()
}

// sanitizeHeader strips CR/LF so user input cannot inject headers
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(v))
}
