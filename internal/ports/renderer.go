package ports

import (
	"time"

	"jotdex/internal/domain"
)

// NoteInfo is what the renderer learns from scanning a note's content
type NoteInfo struct {
	Title string // first markdown heading, empty if none
	Chars int    // rune count of the full content
}

// OverviewItem is one line of the vault overview tree
type OverviewItem struct {
	Entry domain.VaultEntry
	Info  NoteInfo // zero for folders
}

// IndexRenderer composes and parses generated Markdown index files
type IndexRenderer interface {
	RenderYearIndex(summary domain.YearSummary, meta domain.Metadata) []byte
	RenderMonthIndex(listing domain.MonthListing, meta domain.Metadata) []byte
	RenderOverview(items []OverviewItem, meta domain.Metadata, generated time.Time) []byte

	// ParseMetadata reads the metadata block back from an existing index.
	// A malformed header returns an error; callers fall back to defaults.
	ParseMetadata(content []byte) (domain.Metadata, error)

	// ScanNote extracts display information from raw note content
	ScanNote(content []byte) NoteInfo
}
