package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jotdex/internal/application/commands"
	"jotdex/internal/ports"
)

// RegisterGenerateTools adds the index-writing tools to the MCP server.
func RegisterGenerateTools(s *server.MCPServer, repo ports.JournalRepository, renderer ports.IndexRenderer, author string) {
	s.AddTool(yearIndexTool(), yearIndexHandler(repo, renderer, author))
	s.AddTool(monthIndexTool(), monthIndexHandler(repo, renderer, author))
	s.AddTool(overviewTool(), overviewHandler(repo, renderer, author))
}

// --- generate_year_index ---

func yearIndexTool() mcp.Tool {
	return mcp.NewTool("generate_year_index",
		mcp.WithDescription("Generate the yearly index and a monthly index for every month folder of the year. Overwrites existing index files; the original creation date is preserved."),
		mcp.WithNumber("year",
			mcp.Description("4-digit year (e.g. 2024)"),
			mcp.Required(),
		),
	)
}

func yearIndexHandler(repo ports.JournalRepository, renderer ports.IndexRenderer, author string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", 0)

		cmd := commands.NewYearIndexCommand(repo, renderer, author, year)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		text := result.Message
		for _, skip := range result.Skipped {
			text += fmt.Sprintf("\n%s", skip)
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- generate_month_index ---

func monthIndexTool() mcp.Tool {
	return mcp.NewTool("generate_month_index",
		mcp.WithDescription("Generate the index of a single month folder."),
		mcp.WithNumber("year",
			mcp.Description("4-digit year (e.g. 2024)"),
			mcp.Required(),
		),
		mcp.WithNumber("month",
			mcp.Description("Month number 1-12"),
			mcp.Required(),
		),
	)
}

func monthIndexHandler(repo ports.JournalRepository, renderer ports.IndexRenderer, author string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", 0)
		month := req.GetInt("month", 0)

		cmd := commands.NewMonthIndexCommand(repo, renderer, author, year, month)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- generate_overview ---

func overviewTool() mcp.Tool {
	return mcp.NewTool("generate_overview",
		mcp.WithDescription("Walk the whole vault and write overview.md at its root: a hierarchical list of folders and notes with character counts. Skips configuration and trash folders."),
	)
}

func overviewHandler(repo ports.JournalRepository, renderer ports.IndexRenderer, author string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewOverviewCommand(repo, renderer, author)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		text := result.Message
		for _, skip := range result.Skipped {
			text += fmt.Sprintf("\n%s", skip)
		}
		return mcp.NewToolResultText(text), nil
	}
}
