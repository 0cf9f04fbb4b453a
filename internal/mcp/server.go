// Package mcp provides the Model Context Protocol server for typekit.
//
// The server exposes the responsive font-size calculator and the design-token
// tables to MCP clients, so an assistant editing UI code can ask for the same
// values the CLI and exporters produce.
package mcp

import (
	"context"

	"github.com/asteroid-belt/typekit/internal/config"
	"github.com/asteroid-belt/typekit/internal/telemetry"
	"github.com/asteroid-belt/typekit/pkg/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with typekit-specific functionality.
type Server struct {
	cfg       *config.Config
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, tc telemetry.Client) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		cfg:       cfg,
		telemetry: tc,
	}

	s.server = server.NewMCPServer(
		"typekit",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds all typekit tools to the MCP server.
func (s *Server) registerTools() {
	s.server.AddTool(fontSizeTool(), s.handleFontSize)
	s.server.AddTool(typeScaleTool(), s.handleTypeScale)
	s.server.AddTool(listTokensTool(), s.handleListTokens)
}

// registerResources adds the token group resources.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			resourcePrefix+"tokens/{group}",
			"Design tokens",
			mcp.WithTemplateDescription("All tokens of one group (size, space, radius, duration, font-mobile, font-tablet, font-desktop) as JSON"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleTokensResource,
	)
}
