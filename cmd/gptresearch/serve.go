package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/gptresearch/internal/httpapi"
	"github.com/davetashner/gptresearch/internal/mcpserver"
)

// defaultHTTPAddr is used when neither --addr nor http_addr is set.
const defaultHTTPAddr = ":8080"

// Serve-specific flag values.
var (
	serveAddr        string
	serveCORSOrigins []string
)

// serveCmd runs the REST API with the MCP endpoint mounted at /mcp.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the research REST API and MCP HTTP endpoint",
	Long: `Serve POST /v1/research and the MCP streamable HTTP transport at /mcp.
When GPTRESEARCH_API_KEY is set, both require the key as a bearer token or in
the X-API-Key header. GET /healthz is always open.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+defaultHTTPAddr+")")
	serveCmd.Flags().StringSliceVar(&serveCORSOrigins, "cors-origin", nil, "allowed CORS origin (repeatable)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := buildApp(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	defer a.close(ctx)

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := serveAddr
	if addr == "" {
		addr = a.cfg.HTTPAddr
	}
	if addr == "" {
		addr = defaultHTTPAddr
	}

	engine := httpapi.New(a.researcher, httpapi.Options{
		APIKey:       a.env.ServerAPIKey,
		AllowOrigins: serveCORSOrigins,
		MCPHandler:   mcpserver.HTTPHandler(mcpserver.New(Version, a.researcher)),
	})
	if a.env.ServerAPIKey == "" {
		slog.Warn("GPTRESEARCH_API_KEY not set, API is unauthenticated")
	}

	return listenAndServe(ctx, addr, engine)
}

// listenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return exitError(ExitStartupFailure, "gptresearch: listen %s: %v", addr, err)
	}
	return serveListener(ctx, ln, h)
}

func serveListener(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("listening", "addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
