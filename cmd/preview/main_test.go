package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inquiryJSON = `{
	"fromName": "Jane",
	"clientFirstName": "Jane",
	"clientLastName": "Doe",
	"clientEmail": "jane@x.com",
	"clientCountry": "US",
	"clientLanguage": "English",
	"projectType": "Website",
	"serviceCategory": "Design"
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOperatorPreview(t *testing.T) {
	out, err := run(t, inquiryJSON, "operator", "--operator", "studio@example.com")
	require.NoError(t, err)

	assert.Contains(t, out, "To: studio@example.com\r\n")
	assert.Contains(t, out, "Reply-To: jane@x.com\r\n")
	assert.Contains(t, out, "Subject: New Project Inquiry: Website\r\n")
	assert.Contains(t, out, "Location: N/A")
}

func TestClientPreviewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inquiry.json")
	require.NoError(t, os.WriteFile(path, []byte(inquiryJSON), 0o600))

	out, err := run(t, "", "client", "--file", path, "--ack", "We will review your site plan.")
	require.NoError(t, err)

	assert.Contains(t, out, "To: jane@x.com\r\n")
	assert.Contains(t, out, "Subject: Thank you for your inquiry, Jane\r\n")
	assert.Contains(t, out, "We will review your site plan.")
}

func TestPreviewRejectsIncompleteInquiry(t *testing.T) {
	_, err := run(t, `{"fromName":"Jane"}`, "operator")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestPreviewRejectsConflictingFlags(t *testing.T) {
	_, err := run(t, inquiryJSON, "client", "--ack", "hi", "--generate")
	assert.Error(t, err)
}
