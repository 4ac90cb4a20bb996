package greeting

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticHandler(t *testing.T) {
	resp := httptest.NewRecorder()
	staticHandler(resp, httptest.NewRequest(http.MethodGet, "/?name=ignored", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if got := resp.Body.String(); got != "hello world! 그린" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestEnvHandler(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"staging", "Hello World!! test_env: staging"},
		{"", "Hello World!! test_env: "},
	}

	for _, tt := range tests {
		t.Setenv(testEnvKey, tt.value)
		resp := httptest.NewRecorder()
		envHandler(resp, httptest.NewRequest(http.MethodGet, "/", nil))

		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.Code)
		}
		if got := resp.Body.String(); got != tt.expected {
			t.Fatalf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestHandlersRejectOtherMethods(t *testing.T) {
	for _, h := range []http.HandlerFunc{staticHandler, envHandler} {
		resp := httptest.NewRecorder()
		h(resp, httptest.NewRequest(http.MethodPost, "/", nil))

		if resp.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", resp.Code)
		}
		if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
			t.Fatalf("expected Allow GET, got %q", allow)
		}
	}
}
