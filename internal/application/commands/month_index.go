package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"jotdex/internal/application"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// MonthIndexResult contains the result of generating a monthly index
type MonthIndexResult struct {
	Listing   domain.MonthListing
	IndexPath string
	Message   string
}

// MonthIndexCommand generates the index of a single month folder
type MonthIndexCommand struct {
	repo     ports.JournalRepository
	renderer ports.IndexRenderer
	author   string
	Year     int
	Month    int
}

// NewMonthIndexCommand creates a new MonthIndexCommand
func NewMonthIndexCommand(repo ports.JournalRepository, renderer ports.IndexRenderer, author string, year, month int) *MonthIndexCommand {
	return &MonthIndexCommand{
		repo:     repo,
		renderer: renderer,
		author:   author,
		Year:     year,
		Month:    month,
	}
}

// Validate checks if the generate operation is valid
func (c *MonthIndexCommand) Validate() error {
	if err := application.ValidateYear(c.Year); err != nil {
		return err
	}
	return application.ValidateMonth(c.Month)
}

// Execute generates the monthly index. A month folder with no notes
// produces an index with zero links, not an error.
func (c *MonthIndexCommand) Execute(ctx context.Context) (*MonthIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	yearPath, err := c.repo.YearPath(c.Year)
	if err != nil {
		return nil, err
	}

	folder := domain.MonthFolderName(c.Year, c.Month)
	month := domain.Month{
		Year:   c.Year,
		Number: c.Month,
		Folder: folder,
		Path:   filepath.Join(yearPath, folder),
	}

	notes, err := c.repo.ListNotes(month)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("month %s: %w", folder, application.ErrNotFound)
		}
		return nil, fmt.Errorf("month %s: %w", folder, err)
	}

	listing := domain.MonthListing{Month: month, Notes: notes}
	indexPath, err := writeMonthIndex(c.repo, c.renderer, c.author, listing, time.Now())
	if err != nil {
		return nil, err
	}

	return &MonthIndexResult{
		Listing:   listing,
		IndexPath: indexPath,
		Message:   fmt.Sprintf("Indexed %d notes in %s %d", len(notes), month.Name(), c.Year),
	}, nil
}

// writeMonthIndex composes and writes the index file of one month
func writeMonthIndex(repo ports.JournalRepository, renderer ports.IndexRenderer, author string, listing domain.MonthListing, now time.Time) (string, error) {
	indexPath := filepath.Join(listing.Month.Path, domain.MonthIndexFilename(listing.Month.Year, listing.Month.Number))
	meta := domain.MonthIndexMetadata(listing.Month, author, previousDate(repo, renderer, indexPath), now)

	if err := repo.WriteIndex(indexPath, renderer.RenderMonthIndex(listing, meta)); err != nil {
		return "", err
	}
	return indexPath, nil
}
