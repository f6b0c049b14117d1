package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"jotdex/internal/domain"
)

// Repository implements ports.JournalRepository over the local filesystem
type Repository struct {
	vaultPath string
	skipDirs  []string
}

// NewRepository creates a new filesystem repository
func NewRepository(vaultPath string, skipDirs []string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Repository{vaultPath: vaultPath, skipDirs: skipDirs}
}

// VaultRoot returns the expanded vault root path
func (r *Repository) VaultRoot() string {
	return r.vaultPath
}

// YearPath returns the path of a year folder, or an error wrapping
// fs.ErrNotExist when the folder is missing.
func (r *Repository) YearPath(year int) (string, error) {
	path := filepath.Join(r.vaultPath, fmt.Sprintf("%d", year))
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("year %d: %w", year, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("year %d: %s is not a directory", year, path)
	}
	return path, nil
}

// ListYears returns all year folders in the vault, sorted ascending
func (r *Repository) ListYears() ([]domain.Year, error) {
	entries, err := os.ReadDir(r.vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var years []domain.Year
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		value, ok := domain.ParseYearFolder(entry.Name())
		if !ok {
			continue
		}
		years = append(years, domain.Year{
			Value: value,
			Path:  filepath.Join(r.vaultPath, entry.Name()),
		})
	}

	slices.SortFunc(years, func(a, b domain.Year) int {
		return a.Value - b.Value
	})

	return years, nil
}

// ListMonths returns the month folders of a year, sorted chronologically.
// Folders that are not named <year><month> are ignored.
func (r *Repository) ListMonths(year int) ([]domain.Month, error) {
	yearPath, err := r.YearPath(year)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(yearPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read year %d: %w", year, err)
	}

	var months []domain.Month
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderYear, month, ok := domain.ParseMonthFolder(entry.Name())
		if !ok || folderYear != year {
			continue
		}
		months = append(months, domain.Month{
			Year:   year,
			Number: month,
			Folder: entry.Name(),
			Path:   filepath.Join(yearPath, entry.Name()),
		})
	}

	domain.SortMonths(months)
	return months, nil
}

// ListNotes returns the markdown notes of a month folder, sorted by
// filename. Generated index files are excluded.
func (r *Repository) ListNotes(month domain.Month) ([]domain.Note, error) {
	entries, err := os.ReadDir(month.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read month %s: %w", month.Folder, err)
	}

	var notes []domain.Note
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") || domain.IsIndexFile(name) {
			continue
		}
		notes = append(notes, domain.Note{
			Filename: name,
			Path:     filepath.Join(month.Path, name),
		})
	}

	domain.SortNotes(notes)
	return notes, nil
}

// ReadIndex reads an existing index file
func (r *Repository) ReadIndex(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	return content, nil
}

// WriteIndex writes or overwrites an index file
func (r *Repository) WriteIndex(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// ReadNote reads a note's content
func (r *Repository) ReadNote(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}
	return content, nil
}

// WalkVault walks the vault in lexical order, pruning skip folders. The
// vault root itself is not visited. Only folders and markdown files are
// passed to fn; generated index files are excluded.
func (r *Repository) WalkVault(fn func(entry domain.VaultEntry) error) error {
	return filepath.WalkDir(r.vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == r.vaultPath {
			return nil
		}
		if d.IsDir() && slices.Contains(r.skipDirs, d.Name()) {
			return fs.SkipDir
		}

		rel, err := filepath.Rel(r.vaultPath, path)
		if err != nil {
			return err
		}

		if !d.IsDir() {
			if !strings.HasSuffix(d.Name(), ".md") || domain.IsIndexFile(d.Name()) {
				return nil
			}
		}

		return fn(domain.VaultEntry{
			Name:    d.Name(),
			Path:    path,
			RelPath: rel,
			Depth:   strings.Count(rel, string(filepath.Separator)),
			IsDir:   d.IsDir(),
		})
	})
}
