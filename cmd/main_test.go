package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lshigami/polls/config"
	"go.uber.org/fx"
)

func TestAppGraphIsComplete(t *testing.T) {
	if err := fx.ValidateApp(appOptions()...); err != nil {
		t.Fatalf("fx graph invalid: %v", err)
	}
}

func TestNewGinEngine_BuiltinRoutes(t *testing.T) {
	r := NewGinEngine(&config.Config{Server: config.Server{GinMode: "test"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("health: got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("swagger doc: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/admin/questions") {
		t.Errorf("swagger doc does not describe the admin API: %s", w.Body.String())
	}
}
