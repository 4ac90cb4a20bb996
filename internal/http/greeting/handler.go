// Package greeting serves the root greeting, either the fixed message or one
// interpolated with the test_env configuration value.
package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/greeting/internal/config"
	applog "github.com/janisto/greeting/internal/platform/logging"
)

// Path is the route both greeting variants are served on.
const Path = "/"

// Interpolate renders the env greeting for value. An absent value renders as "".
func Interpolate(value string) string {
	return interpolatedPrefix + value
}

// RegisterStatic wires the fixed greeting into api.
func RegisterStatic(api huma.API) {
	huma.Register(api, operation("get-greeting", "Fixed greeting"), Static())
}

// RegisterInterpolated wires the test_env greeting into api, reading src on every request.
func RegisterInterpolated(api huma.API, src config.Source) {
	huma.Register(api, operation("get-greeting-env", "Greeting with test_env"), Interpolated(src))
}

// Static returns the handler for the fixed greeting.
func Static() func(context.Context, *struct{}) (*Output, error) {
	return func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "greeting served", zap.String("variant", string(config.VariantStatic)))
		return textOutput(StaticMessage), nil
	}
}

// Interpolated returns the handler for the test_env greeting.
func Interpolated(src config.Source) func(context.Context, *struct{}) (*Output, error) {
	return func(ctx context.Context, _ *struct{}) (*Output, error) {
		value, ok := lookup(src)
		applog.LogInfo(ctx, "greeting served",
			zap.String("variant", string(config.VariantEnv)),
			zap.Bool("test_env_set", ok),
		)
		return textOutput(Interpolate(value)), nil
	}
}

func lookup(src config.Source) (string, bool) {
	if src == nil {
		return "", false
	}
	return src.Lookup(config.TestEnvKey)
}

func operation(id, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     summary,
		Tags:        []string{"Greeting"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting text",
				Content: map[string]*huma.MediaType{
					"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
				},
			},
		},
	}
}
