// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Lets LLM agents read and update carenotes via stdio
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/mcp"
)

// ServerName identifies the MCP server to clients
const ServerName = "carenotes"

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs carenotes as an MCP (Model Context Protocol) server so an agent
can manage profiles, write diary entries, and use the assistant chat
over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  carenotes mcp

  # Configure in your client's config file:
  # {
  #   "mcpServers": {
  #     "carenotes": {
  #       "command": "carenotes",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	server := mcpserver.NewMCPServer(
		ServerName,
		versionInfo.Version,
		mcpserver.WithToolCapabilities(true),
	)

	handlers := mcp.RegisterTools(server, a.controller, a.newChat(), a.logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("MCP server starting on stdio", "backend", a.cfg.Backend)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		handlers.Shutdown()
	case err := <-serverErr:
		handlers.Shutdown()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
