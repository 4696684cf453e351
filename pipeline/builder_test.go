package pipeline

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wirekit/pipeline/middleware"
)

func TestBuilderRoutes(t *testing.T) {
	b := NewDefault()
	b.Engine().GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	b.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "pong" {
		t.Errorf("expected body 'pong', got %q", w.Body.String())
	}
}

func TestBuilderExtraHandlerMount(t *testing.T) {
	b := NewDefault()
	b.Handle("/raw/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/raw/x", nil)
	b.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected 418 from mounted handler, got %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	b := NewDefault()
	b.Use(middleware.RequestID())
	b.Engine().GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	b.Handler().ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected generated X-Request-Id header")
	}

	// An inbound id is preserved.
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set("X-Request-Id", "fixed-id")
	b.Handler().ServeHTTP(w2, req2)

	if got := w2.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Errorf("expected inbound id preserved, got %q", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	b := NewDefault()
	b.Use(middleware.Recovery())
	b.Engine().GET("/boom", func(*gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	b.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", w.Code)
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid defaults, got %v", err)
	}

	bad := Config{Port: 70000}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestMountDiagnostics(t *testing.T) {
	b := NewDefault()
	b.MountDiagnostics()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	b.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/version", nil)
	b.Handler().ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 from version, got %d", w2.Code)
	}
	if !strings.Contains(w2.Body.String(), `"version"`) {
		t.Errorf("expected version payload, got %q", w2.Body.String())
	}
}
