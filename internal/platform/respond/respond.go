// Package respond renders router-level failures (unknown routes, unsupported
// methods, recovered panics) as RFC 9457 problem details, matching the error
// bodies huma produces for operation errors.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/greeting/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// NotFoundHandler emits a 404 problem response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, msgNotFound, nil)
	}
}

// MethodNotAllowedHandler emits a 405 problem response listing the allowed methods.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		detail := fmt.Sprintf("method %s not allowed", r.Method)
		WriteProblem(w, r, http.StatusMethodNotAllowed, detail, nil)
	}
}

// Recoverer converts panics into 500 problem responses.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				var err error
				if e, ok := rec.(error); ok {
					err = fmt.Errorf("panic: %w", e)
				} else {
					err = fmt.Errorf("panic: %v", rec)
				}
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err,
						zap.ByteString("stack", debug.Stack()))
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr, err,
					zap.ByteString("stack", debug.Stack()))
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteProblem logs the failure at a severity matching status and writes a
// problem body in the representation the client prefers.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string, err error, fields ...zap.Field) {
	logProblem(r, status, detail, err, fields...)

	problem := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	var (
		body        []byte
		contentType string
		encErr      error
	)
	if preferCBOR(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, encErr = cbor.Marshal(problem)
	} else {
		contentType = contentTypeProblemJSON
		body, encErr = marshalJSON(problem)
	}
	if encErr != nil {
		applog.LogError(r.Context(), "failed to encode problem", encErr)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, writeErr := w.Write(body); writeErr != nil {
		applog.LogError(r.Context(), "failed to write problem", writeErr)
	}
}

func marshalJSON(v any) ([]byte, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(sb.String(), "\n")), nil
}

func logProblem(r *http.Request, status int, detail string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	switch {
	case status >= http.StatusInternalServerError:
		applog.LogError(r.Context(), detail, err, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		applog.LogWarn(r.Context(), detail, fields...)
	}
}

// allowedMethods inspects chi's routing tree to discover which methods the path supports.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
		if routePath == "" {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	var allowed []string
	for _, method := range []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	} {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// responseWriter records whether the header was written so a late panic does
// not produce a second status line.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
