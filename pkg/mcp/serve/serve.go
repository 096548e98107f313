// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

// Package serve runs an MCP server over stdio or streamable HTTP.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mcp-file-server/mcp-file-server/pkg/httputil"
)

const (
	// EndpointPath is where the streamable HTTP endpoint is mounted.
	EndpointPath = "/mcp"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Stdio serves server over stdin and stdout until ctx is done or the client disconnects.
func Stdio(ctx context.Context, server *mcp.Server) error {
	logrus.Info("Serving MCP over stdio")
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewHandler returns the HTTP handler serving server at [EndpointPath],
// with a health check at /healthz.
func NewHandler(server *mcp.Server) http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	r := mux.NewRouter()
	r.Handle(EndpointPath, mcpHandler)
	r.Handle(EndpointPath+"/", mcpHandler)
	r.Path("/healthz").Methods(http.MethodGet).HandlerFunc(healthz)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteError(w, fmt.Sprintf("%s not found", req.URL.Path), http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteError(w, fmt.Sprintf("method %s not allowed", req.Method), http.StatusMethodNotAllowed)
	})
	r.Use(logRequests)
	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
			"remote": req.RemoteAddr,
		}).Debug("HTTP request")
		next.ServeHTTP(w, req)
	})
}

// HTTP listens on addr and serves server until ctx is done.
func HTTP(ctx context.Context, server *mcp.Server, addr string) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, server, l)
}

// Serve serves server on l until ctx is done, then shuts down gracefully.
// l is closed on return.
func Serve(ctx context.Context, server *mcp.Server, l net.Listener) error {
	srv := &http.Server{
		Handler:           NewHandler(server),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	logrus.Infof("Serving MCP over streamable HTTP on http://%s%s", l.Addr(), EndpointPath)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("Graceful shutdown failed, closing connections")
			return srv.Close()
		}
		return nil
	})
	return g.Wait()
}
