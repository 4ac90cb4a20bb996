package logging

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
// e.g. 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

type traceContext struct {
	traceID string
	spanID  string
	sampled bool
}

func parseTraceparent(header string) (traceContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	return traceContext{traceID: m[2], spanID: m[3], sampled: m[4] == "01"}, true
}

func (tc traceContext) resource(projectID string) string {
	return fmt.Sprintf("projects/%s/traces/%s", projectID, tc.traceID)
}

// requestFields returns the Cloud Logging correlation fields for one request.
func requestFields(header, projectID, requestID string) []zap.Field {
	var fields []zap.Field
	if projectID != "" {
		if tc, ok := parseTraceparent(header); ok {
			fields = append(fields,
				zap.String("logging.googleapis.com/trace", tc.resource(projectID)),
				zap.String("logging.googleapis.com/spanId", tc.spanID),
				zap.Bool("logging.googleapis.com/trace_sampled", tc.sampled),
			)
		}
	}
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	return fields
}

// correlationID prefers the Cloud Trace resource and falls back to the request ID.
func correlationID(header, projectID, requestID string) string {
	if projectID != "" {
		if tc, ok := parseTraceparent(header); ok {
			return tc.resource(projectID)
		}
	}
	return requestID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		cachedProjectID = firstNonEmpty(
			os.Getenv("FIREBASE_PROJECT_ID"),
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
			os.Getenv("GCP_PROJECT"),
			os.Getenv("GCLOUD_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	})
	return cachedProjectID
}
