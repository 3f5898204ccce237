package web

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "s"},
		{1, ""},
		{2, "s"},
	}
	for _, tt := range tests {
		if got := pluralize(tt.n); got != tt.want {
			t.Errorf("pluralize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestHumanizeTime(t *testing.T) {
	got := humanizeTime(time.Now().Add(-3*time.Hour - 30*time.Minute))
	if got != "3 hours ago" {
		t.Errorf("humanizeTime = %q", got)
	}
}

func TestTemplates_ParseAll(t *testing.T) {
	tmpl := Templates()
	for _, name := range []string{"index.html", "detail.html", "results.html", "error.html"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s not found", name)
		}
	}
}

func TestTemplates_ErrorPage(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "error.html", map[string]any{
		"Title":   "Not Found",
		"Status":  404,
		"Message": "No question matches the given query.",
		"Base":    "/polls",
	})
	if err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, "No question matches the given query.") || !strings.Contains(body, `href="/polls/"`) {
		t.Errorf("unexpected body: %s", body)
	}
}
