// ABOUTME: Main entry point for the carenotes MCP server with stdio transport
// ABOUTME: Initializes config, storage, controller, and MCP server with all tools
package main

import (
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/carenotes/internal/config"
	"github.com/harper/carenotes/internal/core"
	"github.com/harper/carenotes/internal/logging"
	"github.com/harper/carenotes/internal/mcp"
	"github.com/harper/carenotes/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("error", os.Stderr).Fatal("invalid configuration", "err", err)
	}

	// stdout carries the MCP protocol, so logs go to stderr
	logger := logging.New(cfg.LogLevel, os.Stderr)

	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "err", err)
	}
	defer store.Close()

	controller := core.NewController(store, core.WithLogger(logger))
	if err := controller.Load(); err != nil {
		logger.Fatal("failed to load state", "err", err)
	}

	responder := core.NewResponder(controller, nil, cfg.ReplyDelay, logger)
	chat := core.NewChat(controller, responder)

	server := mcpserver.NewMCPServer(
		"carenotes",
		Version,
		mcpserver.WithToolCapabilities(true),
	)

	handlers := mcp.RegisterTools(server, controller, chat, logger)
	defer handlers.Shutdown()

	logger.Info("MCP server starting on stdio", "backend", cfg.Backend, "profiles", len(controller.Profiles()))
	if err := mcpserver.ServeStdio(server); err != nil {
		logger.Error("server error", "err", err)
	}
}
