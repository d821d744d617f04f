package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// NotProvided stands in for optional fields the client left empty
const NotProvided = "N/A"

// OperatorNoticeData holds the inquiry fields summarised for the operator
type OperatorNoticeData struct {
	Name                  string
	ClientName            string
	Email                 string
	Country               string
	Location              string
	Language              string
	ProjectType           string
	ServiceCategory       string
	Website               string
	AdditionalInformation string
}

// ClientNoticeData holds the acknowledgement sent back to the submitter
type ClientNoticeData struct {
	FirstName       string
	Acknowledgement string
	Signature       string
}

const operatorNoticeText = `New Project Inquiry:

Name: {{.Name}}
Client: {{.ClientName}}
Email: {{.Email}}
Country: {{.Country}}
Location: {{.Location}}
Language: {{.Language}}
Project Type: {{.ProjectType}}
Service Category: {{.ServiceCategory}}
Client Website: {{.Website}}
Additional Information:
{{.AdditionalInformation}}
`

const operatorNoticeHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Project Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc; }
    </style>
</head>
<body>
    <div class="container">
        <h2>New Project Inquiry</h2>
        <p><span class="label">Name:</span> {{.Name}}</p>
        <p><span class="label">Client:</span> {{.ClientName}}</p>
        <p><span class="label">Email:</span> {{.Email}}</p>
        <p><span class="label">Country:</span> {{.Country}}</p>
        <p><span class="label">Location:</span> {{.Location}}</p>
        <p><span class="label">Language:</span> {{.Language}}</p>
        <p><span class="label">Project Type:</span> {{.ProjectType}}</p>
        <p><span class="label">Service Category:</span> {{.ServiceCategory}}</p>
        <p><span class="label">Client Website:</span> {{.Website}}</p>
        <p class="label">Additional Information:</p>
        <div class="message-box">{{range paragraphs .AdditionalInformation}}<p>{{.}}</p>{{end}}</div>
    </div>
</body>
</html>`

const clientNoticeText = `Hi {{.FirstName}},

Thank you for reaching out to us. We received your inquiry and our team will get back to you soon. Here's the message we received from you:

{{.Acknowledgement}}

If you need any further assistance or have more details to share, please feel free to contact us.

Best regards,
{{.Signature}}
`

const clientNoticeHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body>
    <h3>Hi {{.FirstName}},</h3>
    <p>Thank you for reaching out to us.</p>
    {{range paragraphs .Acknowledgement}}<p>{{.}}</p>
    {{end}}<p>If you need any further assistance or have more details to share, please feel free to contact us.</p>
    <p>Best regards,</p>
    <p>{{range $i, $line := lines .Signature}}{{if $i}}<br />{{end}}{{$line}}{{end}}</p>
</body>
</html>`

var funcs = htmltemplate.FuncMap{
	"paragraphs": paragraphs,
	"lines":      lines,
}

var (
	operatorTextTmpl = texttemplate.Must(texttemplate.New("operator.txt").Parse(operatorNoticeText))
	operatorHTMLTmpl = htmltemplate.Must(htmltemplate.New("operator.html").Funcs(funcs).Parse(operatorNoticeHTML))
	clientTextTmpl   = texttemplate.Must(texttemplate.New("client.txt").Parse(clientNoticeText))
	clientHTMLTmpl   = htmltemplate.Must(htmltemplate.New("client.html").Funcs(funcs).Parse(clientNoticeHTML))
)

// RenderOperatorNotice returns the plain-text and HTML bodies of the operator notice
func RenderOperatorNotice(data OperatorNoticeData) (string, string, error) {
	return render(operatorTextTmpl, operatorHTMLTmpl, data)
}

// RenderClientNotice returns the plain-text and HTML bodies of the client notice
func RenderClientNotice(data ClientNoticeData) (string, string, error) {
	return render(clientTextTmpl, clientHTMLTmpl, data)
}

func render(textTmpl *texttemplate.Template, htmlTmpl *htmltemplate.Template, data any) (string, string, error) {
	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute %s template: %w", textTmpl.Name(), err)
	}
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to execute %s template: %w", htmlTmpl.Name(), err)
	}
	return text.String(), html.String(), nil
}

// paragraphs splits text on blank lines, dropping empty blocks
func paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(s, "\n\n") {
		if b := strings.TrimSpace(block); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
