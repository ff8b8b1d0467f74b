package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/ikkim/fyyur/internal/app/form"
)

//go:embed templates
var templateFS embed.FS

// DateTimeLayout is how pages print show start times.
const DateTimeLayout = "Mon Jan 2, 2006 3:04PM"

// FuncMap holds the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			return t.Local().Format(DateTimeLayout)
		},
		"join":   strings.Join,
		"states": func() []string { return form.States },
		"genres": func() []string { return form.Genres },
		"fieldErrors": func(errs interface{}, field string) []string {
			m, _ := errs.(map[string][]string)
			return m[field]
		},
	}
}

// Templates parses every embedded template. Each file defines a template
// named after its path below templates/, e.g. "pages/home.html".
func Templates() (*template.Template, error) {
	return template.New("fyyur").Funcs(FuncMap()).ParseFS(templateFS, "templates/*/*.html")
}
