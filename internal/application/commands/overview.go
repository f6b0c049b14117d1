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

// OverviewResult contains the result of generating the vault overview
type OverviewResult struct {
	IndexPath string
	Folders   int
	Notes     int
	Skipped   []*application.SkipError
	Message   string
}

// OverviewCommand generates the hierarchical vault overview at the root
type OverviewCommand struct {
	repo     ports.JournalRepository
	renderer ports.IndexRenderer
	author   string
}

// NewOverviewCommand creates a new OverviewCommand
func NewOverviewCommand(repo ports.JournalRepository, renderer ports.IndexRenderer, author string) *OverviewCommand {
	return &OverviewCommand{
		repo:     repo,
		renderer: renderer,
		author:   author,
	}
}

// Execute walks the vault and writes the overview file. Within each
// folder notes are listed before subfolders, matching the order of the
// rendered headings. Unreadable notes are skipped and reported.
func (c *OverviewCommand) Execute(ctx context.Context) (*OverviewResult, error) {
	children := map[string][]domain.VaultEntry{}
	err := c.repo.WalkVault(func(entry domain.VaultEntry) error {
		parent := filepath.Dir(entry.RelPath)
		if parent == "." {
			parent = ""
		}
		children[parent] = append(children[parent], entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}

	var (
		items   []ports.OverviewItem
		skipped []*application.SkipError
		folders int
		notes   int
	)

	var emit func(rel string)
	emit = func(rel string) {
		for _, entry := range children[rel] {
			if entry.IsDir {
				continue
			}
			content, err := c.repo.ReadNote(entry.Path)
			if err != nil {
				skipped = append(skipped, &application.SkipError{Folder: entry.RelPath, Reason: err})
				continue
			}
			notes++
			items = append(items, ports.OverviewItem{Entry: entry, Info: c.renderer.ScanNote(content)})
		}
		for _, entry := range children[rel] {
			if !entry.IsDir {
				continue
			}
			folders++
			items = append(items, ports.OverviewItem{Entry: entry})
			emit(entry.RelPath)
		}
	}
	emit("")

	now := time.Now()
	indexPath := filepath.Join(c.repo.VaultRoot(), domain.OverviewFilename)
	meta := domain.OverviewMetadata(c.author, previousDate(c.repo, c.renderer, indexPath), now)

	if err := c.repo.WriteIndex(indexPath, c.renderer.RenderOverview(items, meta, now)); err != nil {
		return nil, err
	}

	return &OverviewResult{
		IndexPath: indexPath,
		Folders:   folders,
		Notes:     notes,
		Skipped:   skipped,
		Message:   fmt.Sprintf("Overview lists %d notes in %d folders", notes, folders),
	}, nil
}
