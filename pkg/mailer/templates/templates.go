// Package templates holds the transactional email templates. Each email is
// three files: <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"sort"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

const (
	Welcome     = "welcome"
	OrderPlaced = "order_placed"
)

// EmailData defines the fields available to email templates.
type EmailData struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`

	CompanyName    string `json:"CompanyName"`
	CompanyAddress string `json:"CompanyAddress"`
	AppName        string `json:"AppName"`
	LogoURL        string `json:"LogoURL"`
	SupportURL     string `json:"SupportURL"`

	Time string `json:"Time"`

	// order_placed only
	OrderID    string   `json:"OrderID"`
	OrderTotal string   `json:"OrderTotal"`
	OrderLines []string `json:"OrderLines"`
}

// ToMap flattens d into the map shape carried by queued email jobs.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		return value
	}
}

func baseFuncs() map[string]any {
	return map[string]any{
		"now":     func() time.Time { return time.Now().UTC() },
		"upper":   strings.ToUpper,
		"default": defaultFn,
	}
}

// Parsed once; the embedded set never changes at runtime.
var (
	textSet = texttpl.Must(texttpl.New("").Funcs(baseFuncs()).ParseFS(FS, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet = htmpl.Must(htmpl.New("").Funcs(baseFuncs()).ParseFS(FS, "*.html.tmpl"))
)

// Names lists the emails that have all three parts.
func Names() []string {
	var out []string
	for _, t := range htmlSet.Templates() {
		name, ok := strings.CutSuffix(t.Name(), ".html.tmpl")
		if ok && Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Has reports whether name can be rendered.
func Has(name string) bool {
	return textSet.Lookup(name+".subject.tmpl") != nil &&
		textSet.Lookup(name+".text.tmpl") != nil &&
		htmlSet.Lookup(name+".html.tmpl") != nil
}

// Render renders the subject, plain text and HTML bodies of email name.
func Render(name string, data any) (subject string, text string, html string, err error) {
	if !Has(name) {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := textSet.ExecuteTemplate(&buf, name+".subject.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := textSet.ExecuteTemplate(&buf, name+".text.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render %s text: %w", name, err)
	}
	text = buf.String()

	buf.Reset()
	if err := htmlSet.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return subject, text, buf.String(), nil
}
