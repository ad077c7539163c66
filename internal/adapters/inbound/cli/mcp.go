package cli

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/openkraft/ngkit/internal/adapters/inbound/mcp"
	"github.com/openkraft/ngkit/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ngkit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start ngkit MCP server (stdio)",
		Long:  "Start the ngkit MCP server using stdio transport. This lets AI coding assistants run pre-lint and template checks and preview lint, build and test plans.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath != "" {
				if err := os.Chdir(projectPath); err != nil {
					return fmt.Errorf("changing to project path: %w", err)
				}
			}

			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			self, err := selfCommand(cfg)
			if err != nil {
				return err
			}

			s := mcpadapter.NewNgkitMCPServer(cfg, self)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
