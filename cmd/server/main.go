package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/greeting/internal/config"
	"github.com/janisto/greeting/internal/http/routes"
	applog "github.com/janisto/greeting/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting/internal/platform/middleware"
	"github.com/janisto/greeting/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	docsPath        = "/api-docs"
	shutdownTimeout = 10 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 1
	}
	applog.LogInfo(ctx, "config loaded",
		zap.String("variant", string(cfg.Variant)),
		zap.Strings("envFiles", cfg.EnvFiles),
	)

	router, _, err := newRouter(cfg, config.Env{})
	if err != nil {
		applog.LogError(ctx, "route registration failed", err)
		return 1
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		applog.LogError(ctx, "listen failed", err, zap.String("addr", cfg.Addr()))
		return 1
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := serve(sigCtx, newServer(cfg.Addr(), router), ln); err != nil {
		applog.LogError(ctx, "server error", err)
		return 1
	}
	applog.LogInfo(ctx, "server exited")
	return 0
}

// newRouter builds the middleware stack, the huma API and the routes for cfg.
func newRouter(cfg config.Config, src config.Source) (chi.Router, huma.API, error) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	humaCfg := huma.DefaultConfig("Greeting API", Version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)

	if err := routes.Register(router, api, cfg.Variant, src); err != nil {
		return nil, nil, err
	}
	return router, api, nil
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
