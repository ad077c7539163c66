package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/ngkit/internal/domain"
)

const configURI = "ngkit://config"

// registerResources registers all ngkit MCP resources on the given server.
func registerResources(s *server.MCPServer, cfg domain.ProjectConfig) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Effective configuration",
			mcplib.WithResourceDescription("The .ngkit.yaml settings merged over the defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(cfg),
	)
}

func handleConfigResource(cfg domain.ProjectConfig) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      configURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
