// Package routes wires HTTP endpoints into the router and API.
package routes

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/greeting/internal/config"
	"github.com/janisto/greeting/internal/http/greeting"
	"github.com/janisto/greeting/internal/http/health"
)

// Register mounts the health probe on router and the greeting variant on api.
// src is only consulted by the env variant.
func Register(router chi.Router, api huma.API, variant config.Variant, src config.Source) error {
	router.Get(health.Path, health.Handler)

	switch variant {
	case config.VariantStatic:
		greeting.RegisterStatic(api)
	case config.VariantEnv:
		greeting.RegisterInterpolated(api, src)
	default:
		return fmt.Errorf("unknown greeting variant %q", variant)
	}
	return nil
}
