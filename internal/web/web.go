// Package web holds the HTML templates for the public poll pages.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page template with FuncMap installed.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html"))
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"humanizeTime": humanizeTime,
		"pluralize":    pluralize,
		"inc":          func(i int) int { return i + 1 },
	}
}

func humanizeTime(t time.Time) string {
	return humanize.Time(t)
}

// pluralize returns the plural suffix for n, as in "1 vote" / "2 votes".
func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
