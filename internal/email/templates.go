package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const magicLinkTemplate = `
<html>
<body style="font-family: sans-serif; color: #1a2b3c;">
  <h2>Sign in to CrewBoard</h2>
  <p>Click the button below to sign in. The link is valid for {{.TTLMinutes}} minutes and can be used once.</p>
  <p><a href="{{.ActionURL}}" style="background:#0077cc;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none;">Sign in</a></p>
  <p>If you did not request this email you can safely ignore it.</p>
</body>
</html>`

const applicationStatusTemplate = `
<html>
<body style="font-family: sans-serif; color: #1a2b3c;">
  <h2>Update on your application</h2>
  <p>Hi {{.CrewName}},</p>
  <p>Your application for <strong>{{.JobTitle}}</strong> at {{.OrgName}} is now marked as <strong>{{.Status}}</strong>.</p>
  <p>Good luck out there!</p>
</body>
</html>`

// TemplateManager renders the built-in HTML mail templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	sources := map[string]string{
		"magic_link":         magicLinkTemplate,
		"application_status": applicationStatusTemplate,
	}

	templates := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %q: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &TemplateManager{templates: templates}, nil
}

func (m *TemplateManager) Render(name string, data interface{}) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", name, err)
	}
	return buf.String(), nil
}
