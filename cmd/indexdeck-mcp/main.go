package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"indexdeck/internal/adapters/indexer"
	mcpadapter "indexdeck/internal/adapters/mcp"
	"indexdeck/internal/config"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("indexdeck-mcp: %v", err)
	}

	serverFlag := flag.String("server", cfg.ServerURL, "indexing server URL")
	flag.Parse()

	client, err := indexer.New(indexer.WithBaseURL(*serverFlag))
	if err != nil {
		log.Fatalf("indexdeck-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"indexdeck-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, client)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("indexdeck-mcp: %v", err)
	}
}
