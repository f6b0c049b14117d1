package commands

import (
	"context"
	"fmt"

	"jotdex/internal/application"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// StatsResult contains read-only note counts for a year
type StatsResult struct {
	Summary domain.YearSummary
	Skipped []*application.SkipError
}

// StatsCommand counts notes per month without writing anything
type StatsCommand struct {
	repo ports.JournalRepository
	Year int
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(repo ports.JournalRepository, year int) *StatsCommand {
	return &StatsCommand{repo: repo, Year: year}
}

// Validate checks if the stats operation is valid
func (c *StatsCommand) Validate() error {
	return application.ValidateYear(c.Year)
}

// Execute collects note counts for the year
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	summary, skipped, err := collectYear(c.repo, c.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to collect year %d: %w", c.Year, err)
	}

	return &StatsResult{Summary: summary, Skipped: skipped}, nil
}
