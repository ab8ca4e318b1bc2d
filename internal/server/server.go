// Package server assembles the HTTP stack: chi router, middleware, huma API
// and the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/huma-greeter/internal/http/v1/routes"
	"github.com/janisto/huma-greeter/internal/platform/config"
	applog "github.com/janisto/huma-greeter/internal/platform/logging"
	appmiddleware "github.com/janisto/huma-greeter/internal/platform/middleware"
	"github.com/janisto/huma-greeter/internal/platform/respond"
)

const (
	apiTitle       = "Greeter API"
	apiDescription = "Plain-text and JSON greetings."

	// DocsPath serves the interactive API reference.
	DocsPath = "/docs"
	// OpenAPIPath is the base path of the generated document; huma appends .json and .yaml.
	OpenAPIPath = "/api-doc/openapi"
	schemasPath = "/schemas"

	maxHeaderBytes = 64 << 10
)

// humaConfig returns the API configuration shared by the server and the
// openapi command.
func humaConfig(version string, docsEnabled bool) huma.Config {
	cfg := huma.DefaultConfig(apiTitle, version)
	cfg.Info.Description = apiDescription
	cfg.OpenAPIPath = OpenAPIPath
	cfg.SchemasPath = schemasPath
	cfg.DocsPath = DocsPath
	if !docsEnabled {
		cfg.DocsPath = ""
	}
	// Drops the $schema link transformer so JSON bodies carry only their own fields.
	cfg.CreateHooks = nil
	return cfg
}

// advertiseCBOR adds a CBOR media type next to every JSON request and response body.
func advertiseCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newAPI(router chi.Router, version string, docsEnabled bool) huma.API {
	api := humachi.New(router, humaConfig(version, docsEnabled))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, advertiseCBOR)
	routes.Register(api)
	return api
}

// NewAPI builds the API on a bare router. It is used to export the OpenAPI
// document without starting a server.
func NewAPI(version string) huma.API {
	return newAPI(chi.NewRouter(), version, true)
}

// NewHandler builds the router with the full middleware stack and every route registered.
func NewHandler(cfg *config.Config, version string) (http.Handler, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(DocsPath, "/api-doc", schemasPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// Trust X-Forwarded-For only behind a proxy that overwrites it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.MaxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := newAPI(router, version, cfg.DocsEnabled)
	return router, api
}

// Run binds cfg.Addr() and serves until ctx is cancelled. Bind errors are
// returned before anything is logged as listening.
func Run(ctx context.Context, cfg *config.Config, version string) error {
	handler, _ := NewHandler(cfg, version)

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, ln, handler, cfg)
}

// Serve runs handler on ln and shuts down gracefully once ctx is done, waiting
// at most cfg.ShutdownTimeout for in-flight requests.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg *config.Config) error {
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	addr := ln.Addr().String()
	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	applog.LogInfo(ctx, "server listening", zap.String("addr", addr))

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
