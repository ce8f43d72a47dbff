// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes the workout app to AI agents with tools and resources

package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/workouts/internal/app"
)

// Server wraps the MCP server around a running App.
type Server struct {
	mcp *mcp.Server

	// mu serializes handler calls; App has a single owner.
	mu  sync.Mutex
	app *app.App
}

// NewServer creates MCP server with all capabilities.
func NewServer(a *app.App) (*Server, error) {
	if a == nil {
		return nil, fmt.Errorf("app is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "workouts",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp: mcpServer,
		app: a,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
