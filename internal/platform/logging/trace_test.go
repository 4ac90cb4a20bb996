package logging

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const sampleTraceparent = "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01"

func fieldMap(fields []zap.Field) map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{"sampled", sampleTraceparent, true, true},
		{"not sampled", "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-00", true, false},
		{"empty", "", false, false},
		{"short trace id", "00-ab42-d21f7bc17caa5aba-01", false, false},
		{"legacy cloud trace", "105445aa7843bc8bf206b12000100000/1;o=1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("parseTraceparent(%q) ok = %v, want %v", tt.header, ok, tt.ok)
			}
			if ok && tc.sampled != tt.sampled {
				t.Fatalf("sampled = %v, want %v", tc.sampled, tt.sampled)
			}
		})
	}
}

func TestRequestFieldsWithProject(t *testing.T) {
	got := fieldMap(requestFields(sampleTraceparent, "demo", "req-1"))

	if got["logging.googleapis.com/trace"] != "projects/demo/traces/ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("unexpected trace field: %v", got["logging.googleapis.com/trace"])
	}
	if got["logging.googleapis.com/spanId"] != "d21f7bc17caa5aba" {
		t.Fatalf("unexpected span field: %v", got["logging.googleapis.com/spanId"])
	}
	if got["logging.googleapis.com/trace_sampled"] != true {
		t.Fatalf("expected trace_sampled true, got %v", got["logging.googleapis.com/trace_sampled"])
	}
	if got["requestId"] != "req-1" {
		t.Fatalf("expected requestId req-1, got %v", got["requestId"])
	}
}

func TestRequestFieldsWithoutProject(t *testing.T) {
	got := fieldMap(requestFields(sampleTraceparent, "", "req-2"))
	if len(got) != 1 || got["requestId"] != "req-2" {
		t.Fatalf("expected only requestId, got %v", got)
	}
	if fields := requestFields("", "", ""); len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}

func TestCorrelationID(t *testing.T) {
	if got := correlationID(sampleTraceparent, "demo", "req-1"); got != "projects/demo/traces/ab42124a3c573678d4d8b21ba52df3bf" {
		t.Fatalf("expected trace resource, got %q", got)
	}
	if got := correlationID("garbage", "demo", "req-1"); got != "req-1" {
		t.Fatalf("expected request id fallback, got %q", got)
	}
	if got := correlationID(sampleTraceparent, "", "req-1"); got != "req-1" {
		t.Fatalf("expected request id without project, got %q", got)
	}
}

func TestResolveProjectIDPriority(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "gcp-project")
	t.Setenv("PROJECT_ID", "fallback")
	projectIDOnce = sync.Once{}
	t.Cleanup(func() { projectIDOnce = sync.Once{} })

	if got := resolveProjectID(); got != "gcp-project" {
		t.Fatalf("expected gcp-project, got %q", got)
	}
}
