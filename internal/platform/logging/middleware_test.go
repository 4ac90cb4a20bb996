package logging

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	useLogger(t, zap.New(core))
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("GCLOUD_PROJECT", "")
	t.Setenv("PROJECT_ID", "")
	projectIDOnce = sync.Once{}
	t.Cleanup(func() { projectIDOnce = sync.Once{} })

	var traceID string
	h := chimiddleware.RequestID(RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
		LogInfo(r.Context(), "inside handler")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if traceID != "req-abc" {
		t.Fatalf("expected trace id to fall back to request id, got %q", traceID)
	}
	entries := logs.FilterMessage("inside handler").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requestId"]; got != "req-abc" {
		t.Fatalf("expected requestId req-abc, got %v", got)
	}
}

func TestRequestLoggerUsesTraceparent(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	useLogger(t, zap.New(core))
	t.Setenv("FIREBASE_PROJECT_ID", "demo")
	projectIDOnce = sync.Once{}
	t.Cleanup(func() { projectIDOnce = sync.Once{} })

	var traceID string
	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceparentHeader, sampleTraceparent)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if traceID != "projects/demo/traces/ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("unexpected trace id %q", traceID)
	}
}

func TestAccessLoggerWritesSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	useLogger(t, zap.New(core))

	h := RequestLogger()(AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 access log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodGet {
		t.Fatalf("expected method GET, got %v", fields["method"])
	}
	if fields["path"] != "/teapot" {
		t.Fatalf("expected path /teapot, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status 418, got %v (%T)", fields["status"], fields["status"])
	}
	if fields["bytes"] != int64(len("short and stout")) {
		t.Fatalf("unexpected bytes %v", fields["bytes"])
	}
}
