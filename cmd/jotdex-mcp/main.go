package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jotdex/internal/adapters/filesystem"
	"jotdex/internal/adapters/markdown"
	mcpadapter "jotdex/internal/adapters/mcp"
	"jotdex/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	authorFlag := flag.String("author", config.Author(), "author written into generated metadata")
	flag.Parse()

	repo := filesystem.NewRepository(*vaultFlag, config.SkipDirs)
	renderer := markdown.NewRenderer()

	mcpServer := server.NewMCPServer(
		"jotdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterQueryTools(mcpServer, repo)
	mcpadapter.RegisterGenerateTools(mcpServer, repo, renderer, *authorFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jotdex-mcp: %v", err)
	}
}
