package ports

import "jotdex/internal/domain"

// JournalRepository defines filesystem access to the notes vault
type JournalRepository interface {
	// Listing
	ListYears() ([]domain.Year, error)
	ListMonths(year int) ([]domain.Month, error)
	ListNotes(month domain.Month) ([]domain.Note, error)

	// Index files
	ReadIndex(path string) ([]byte, error)
	WriteIndex(path string, content []byte) error

	// Note content (overview title/char scanning)
	ReadNote(path string) ([]byte, error)

	// Walk visits every folder and markdown file under the vault root in
	// lexical order, pruning the configured skip folders.
	WalkVault(fn func(entry domain.VaultEntry) error) error

	// Path resolution
	VaultRoot() string
	YearPath(year int) (string, error)
}
