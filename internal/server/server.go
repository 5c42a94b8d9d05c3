// Package server wires the Jenkins client and the tool set into an MCP
// server instance. No business logic lives here, only composition.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"jenkinsmcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all Jenkins tools registered.
func New(t *tools.Tools) *server.MCPServer {
	s := server.NewMCPServer(
		"jenkins-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Tools for inspecting and triggering jobs on a Jenkins CI server."),
	)
	t.Register(s)
	return s
}

// ServeStdio serves the MCP protocol over stdin/stdout and blocks until
// the stream closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
