package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jotdex/internal/application/commands"
	"jotdex/internal/ports"
)

// RegisterQueryTools adds the read-only journal tools to the MCP server.
func RegisterQueryTools(s *server.MCPServer, repo ports.JournalRepository) {
	s.AddTool(statsTool(), statsHandler(repo))
	s.AddTool(listYearsTool(), listYearsHandler(repo))
}

// --- journal_stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("journal_stats",
		mcp.WithDescription("Count daily notes per month for a year. Reads the vault only; writes nothing."),
		mcp.WithNumber("year",
			mcp.Description("4-digit year (e.g. 2024)"),
			mcp.Required(),
		),
	)
}

func statsHandler(repo ports.JournalRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", 0)

		cmd := commands.NewStatsCommand(repo, year)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Total number of notes in %d: %d\n", result.Summary.Year, result.Summary.TotalNotes())
		for _, m := range result.Summary.Months {
			fmt.Fprintf(&sb, "%s: %d notes\n", m.Month.Name(), len(m.Notes))
		}
		for _, skip := range result.Skipped {
			fmt.Fprintf(&sb, "%s\n", skip)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_years ---

func listYearsTool() mcp.Tool {
	return mcp.NewTool("list_years",
		mcp.WithDescription("List the year folders present in the vault."),
	)
}

func listYearsHandler(repo ports.JournalRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		years, err := repo.ListYears()
		if err != nil {
			return toolError(err)
		}

		if len(years) == 0 {
			return mcp.NewToolResultText("No year folders found."), nil
		}
		var sb strings.Builder
		for _, y := range years {
			fmt.Fprintf(&sb, "%d\n", y.Value)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
