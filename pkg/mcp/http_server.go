package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPConfig extends Config with HTTP-specific settings.
type HTTPConfig struct {
	Config

	// Addr is the address to listen on, e.g. ":8080".
	Addr string

	// BaseURL is the public URL of this server. Defaults to
	// http://localhost{Addr}.
	BaseURL string

	TLSCertFile string
	TLSKeyFile  string

	// OAuth, when set, protects the MCP endpoint with bearer tokens.
	OAuth *OAuthConfig

	// EndpointPath is the path of the MCP endpoint (default "/mcp").
	EndpointPath string

	EnableCORS bool

	// AllowedOrigins limits CORS to these origins. Empty allows any origin.
	AllowedOrigins []string

	// MetricsPath serves Prometheus metrics when set, outside OAuth.
	MetricsPath string
}

func (cfg HTTPConfig) endpointPath() string {
	if cfg.EndpointPath == "" {
		return "/mcp"
	}
	return cfg.EndpointPath
}

func (cfg HTTPConfig) baseURL() string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	protocol := "http"
	if cfg.TLSCertFile != "" {
		protocol = "https"
	}
	return fmt.Sprintf("%s://localhost%s", protocol, cfg.Addr)
}

// NewHTTPHandler builds the routes of the streamable HTTP server: the MCP
// endpoint, the protected resource metadata when OAuth is configured, and
// metrics when MetricsPath is set.
func NewHTTPHandler(cfg HTTPConfig) (http.Handler, error) {
	server, err := newServer(cfg.Config)
	if err != nil {
		return nil, err
	}

	streamable := mcpserver.NewStreamableHTTPServer(
		server,
		mcpserver.WithEndpointPath(cfg.endpointPath()),
		mcpserver.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if claims := TokenClaimsFromContext(r.Context()); claims != nil {
				return contextWithTokenClaims(ctx, claims)
			}
			return ctx
		}),
	)

	mux := http.NewServeMux()

	var handler http.Handler = streamable
	if cfg.OAuth != nil {
		mux.HandleFunc(wellKnownPath, ProtectedResourceMetadataHandler(*cfg.OAuth))
		handler = OAuthMiddleware(*cfg.OAuth)(handler)
	}
	if cfg.EnableCORS {
		handler = corsMiddleware(cfg.AllowedOrigins)(handler)
	}
	mux.Handle(cfg.endpointPath(), handler)

	if cfg.MetricsPath != "" {
		mux.Handle(cfg.MetricsPath, promhttp.Handler())
	}

	return mux, nil
}

// RunHTTPServer serves MCP over streamable HTTP until ctx is cancelled.
func RunHTTPServer(ctx context.Context, cfg HTTPConfig) error {
	handler, err := NewHTTPHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	slog.Info("starting MCP HTTP server",
		"addr", cfg.Addr,
		"endpoint", cfg.endpointPath(),
		"base_url", cfg.baseURL(),
		"tls", cfg.TLSCertFile != "",
		"oauth", cfg.OAuth != nil,
		"metrics", cfg.MetricsPath,
	)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := len(allowedOrigins) == 0 ||
				slices.Contains(allowedOrigins, "*") ||
				slices.Contains(allowedOrigins, origin)

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id")
				w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id, WWW-Authenticate")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
