package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names
const (
	Welcome     = "welcome"
	NewFollower = "new_follower"
)

// EmailData defines the fields available to email templates.
type EmailData struct {
	Name         string
	Email        string
	AppName      string
	ActorName    string // for follower notifications
	Time         string
	SupportEmail string
}

var funcMap = htmpl.FuncMap{
	"now":        func() time.Time { return time.Now().UTC() },
	"formatTime": func(t time.Time, layout string) string { return t.Format(layout) },
	"upper":      strings.ToUpper,
}

// Render loads and renders the named template from the embedded FS.
func Render(name string, data EmailData) (string, error) {
	t, err := htmpl.New(name + ".tmpl").Funcs(funcMap).ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// SubjectFor maps a template name to its email subject line.
func SubjectFor(name string) string {
	switch name {
	case Welcome:
		return "Welcome to Weave"
	case NewFollower:
		return "You have a new follower"
	default:
		return "Notification"
	}
}
