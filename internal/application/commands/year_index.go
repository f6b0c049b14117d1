package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"jotdex/internal/application"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// YearIndexResult contains the result of generating a yearly index
type YearIndexResult struct {
	Summary    domain.YearSummary
	IndexPath  string
	MonthPaths []string
	Skipped    []*application.SkipError
	Message    string
}

// YearIndexCommand generates the yearly index and a monthly index for
// every month folder of the year.
type YearIndexCommand struct {
	repo     ports.JournalRepository
	renderer ports.IndexRenderer
	author   string
	Year     int
}

// NewYearIndexCommand creates a new YearIndexCommand
func NewYearIndexCommand(repo ports.JournalRepository, renderer ports.IndexRenderer, author string, year int) *YearIndexCommand {
	return &YearIndexCommand{
		repo:     repo,
		renderer: renderer,
		author:   author,
		Year:     year,
	}
}

// Validate checks if the generate operation is valid
func (c *YearIndexCommand) Validate() error {
	return application.ValidateYear(c.Year)
}

// Execute generates the yearly index and the monthly indexes
func (c *YearIndexCommand) Execute(ctx context.Context) (*YearIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	summary, skipped, err := collectYear(c.repo, c.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to collect year %d: %w", c.Year, err)
	}

	yearPath, err := c.repo.YearPath(c.Year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	indexPath := filepath.Join(yearPath, domain.YearIndexFilename(c.Year))
	meta := domain.YearIndexMetadata(summary, c.author, previousDate(c.repo, c.renderer, indexPath), now)

	if err := c.repo.WriteIndex(indexPath, c.renderer.RenderYearIndex(summary, meta)); err != nil {
		return nil, err
	}

	var monthPaths []string
	for _, listing := range summary.Months {
		path, err := writeMonthIndex(c.repo, c.renderer, c.author, listing, now)
		if err != nil {
			return nil, err
		}
		monthPaths = append(monthPaths, path)
	}

	return &YearIndexResult{
		Summary:    summary,
		IndexPath:  indexPath,
		MonthPaths: monthPaths,
		Skipped:    skipped,
		Message: fmt.Sprintf("Indexed %d notes across %d months in %d",
			summary.TotalNotes(), len(summary.Months), c.Year),
	}, nil
}
