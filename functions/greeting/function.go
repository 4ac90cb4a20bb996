// Package greeting provides the root greetings as HTTP Cloud Functions.
//
// Greeting serves the fixed message; GreetingEnv interpolates the test_env
// environment variable, read on every invocation.
package greeting

import (
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// Messages match the main project's internal/http/greeting constants; keep them in sync.
const (
	staticMessage      = "hello world! 그린"
	interpolatedPrefix = "Hello World!! test_env: "
	testEnvKey         = "test_env"
)

func init() {
	functions.HTTP("Greeting", staticHandler)
	functions.HTTP("GreetingEnv", envHandler)
}

func staticHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, staticMessage)
}

// envHandler renders an unset test_env as the empty string.
func envHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, interpolatedPrefix+os.Getenv(testEnvKey))
}

func writeText(w http.ResponseWriter, r *http.Request, body string) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
