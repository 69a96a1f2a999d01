package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateManager loads and renders the email templates. Files in the
// configured template directory win; the built-in templates below are the
// fallback so a fresh checkout works without assets.
type TemplateManager struct {
	templates map[string]*template.Template
	config    Config
}

func NewTemplateManager(config Config) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
		config:    config,
	}

	for _, name := range []string{"verification", "recovery"} {
		tpl, err := tm.loadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

func (tm *TemplateManager) loadTemplate(name string) (*template.Template, error) {
	contentPath := filepath.Join(tm.config.TemplatePath, name+".html")

	tpl, err := template.ParseFiles(contentPath)
	if err != nil {
		return tm.getBuiltinTemplate(name)
	}
	return tpl, nil
}

func (tm *TemplateManager) getBuiltinTemplate(name string) (*template.Template, error) {
	var tplText string

	switch name {
	case "verification":
		tplText = verificationTemplate
	case "recovery":
		tplText = recoveryTemplate
	default:
		return nil, fmt.Errorf("unknown template: %s", name)
	}

	return template.New(name).Parse(tplText)
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(templateName string, data interface{}) (string, error) {
	tpl, exists := tm.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

const (
	verificationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verify Your Email</title>
</head>
<body>
    <p>Enter this OTP code: <b>{{.Code}}</b> to verify your email address: <b>{{.Email}}</b> and complete signing up.</p>
    <br>
    <b>NOTE: This OTP expires in {{.TTLMinutes}} minutes.</b>
</body>
</html>`

	recoveryTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Recover Your Account</title>
</head>
<body>
    <p>Enter this OTP: <b>{{.Code}}</b> to recover your account (<b>{{.Email}}</b>) and change your password.</p>
    <br>
    <b>NOTE: This OTP expires in {{.TTLMinutes}} minutes.</b>
    <p>DO NOT DISCLOSE OR SHARE YOUR DETAILS WITH ANYONE. ALWAYS REMEMBER TO KEEP YOUR LOGIN DETAILS SAFE AND CONFIDENTIAL.</p>
</body>
</html>`
)
