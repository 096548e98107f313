// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gotest.tools/v3/assert"

	"github.com/mcp-file-server/mcp-file-server/pkg/httputil"
)

type echoParams struct {
	Text string `json:"text" jsonschema:"The text to echo."`
}

type echoResult struct {
	Text string `json:"text" jsonschema:"The echoed text."`
}

func newTestServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "test"}, nil)
	mcp.AddTool(server, &mcp.Tool{Name: "echo", Description: "Echo the input."},
		func(_ context.Context, _ *mcp.CallToolRequest, args echoParams) (*mcp.CallToolResult, *echoResult, error) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: args.Text}},
			}, &echoResult{Text: args.Text}, nil
		})
	return server
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestServer()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	assert.NilError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var body map[string]string
	assert.NilError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestServer()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	assert.NilError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e httputil.ErrorJSON
	assert.NilError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "/nope not found", e.Message)
}

func TestStreamableHTTP(t *testing.T) {
	srv := httptest.NewServer(NewHandler(newTestServer()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: srv.URL + EndpointPath}, nil)
	assert.NilError(t, err)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"text": "hello"},
	})
	assert.NilError(t, err)
	assert.Assert(t, !res.IsError)
	tc, ok := res.Content[0].(*mcp.TextContent)
	assert.Assert(t, ok)
	assert.Equal(t, "hello", tc.Text)
	assert.NilError(t, cs.Close())
}

func TestServeShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NilError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, newTestServer(), l)
	}()

	resp, err := http.Get("http://" + l.Addr().String() + "/healthz")
	assert.NilError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NilError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
