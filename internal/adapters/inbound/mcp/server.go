// Package mcp exposes ngkit's read-only checks and plans over the Model
// Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/ngkit/internal/domain"
)

// NewNgkitMCPServer creates an MCP server with all ngkit tools and resources
// registered. Paths are resolved against the working directory; self is
// the command line that re-invokes ngkit in planned lint and build steps.
func NewNgkitMCPServer(cfg domain.ProjectConfig, self string) *server.MCPServer {
	s := server.NewMCPServer(
		"ngkit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg, self)
	registerResources(s, cfg)

	return s
}
