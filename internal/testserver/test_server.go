// Package testserver runs the complete board behind an httptest server.
package testserver

import (
	"context"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectboard/internal/app"
	"github.com/rpggio/projectboard/internal/config"
)

type TestServer struct {
	Server *httptest.Server
	App    *app.App
}

// New starts a board with default configuration and an in-memory activity
// log. Both are torn down when the test ends.
func New(t *testing.T, opts ...app.Option) *TestServer {
	t.Helper()
	return NewWithConfig(t, config.Default(), opts...)
}

// NewWithConfig starts a board with cfg.
func NewWithConfig(t *testing.T, cfg config.Config, opts ...app.Option) *TestServer {
	t.Helper()

	board, err := app.New(cfg, nil, opts...)
	require.NoError(t, err)

	handler, err := board.Handler()
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		_ = board.Close()
	})

	return &TestServer{Server: server, App: board}
}

// URL returns the absolute URL of path on the server.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// ConnectMCP opens an MCP client session over streamable HTTP.
func (ts *TestServer) ConnectMCP(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.URL("/mcp"),
		HTTPClient: ts.Server.Client(),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}
