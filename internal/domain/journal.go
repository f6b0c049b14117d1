package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Year represents a year folder in the vault (e.g., "2024")
type Year struct {
	Value int
	Path  string
}

// Month represents a month folder within a year (e.g., "202401")
type Month struct {
	Year   int
	Number int // 1-12
	Folder string
	Path   string
}

// Name returns the English month name (e.g., "January")
func (m Month) Name() string {
	return time.Month(m.Number).String()
}

// Tag returns the lowercase month name used in metadata tags
func (m Month) Tag() string {
	return strings.ToLower(m.Name())
}

// Note represents a daily note file within a month folder
type Note struct {
	Filename string // e.g., "20240112_Some_Topic.md"
	Path     string
}

// Stem returns the filename without the .md extension
func (n Note) Stem() string {
	return strings.TrimSuffix(n.Filename, ".md")
}

// Date extracts the note's date from its filename. Filenames follow
// "YYYYMMDD.md" or "YYYYMMDD_AnyText.md"; the date is the digit run
// before the first underscore.
func (n Note) Date() (time.Time, bool) {
	return ParseNoteDate(n.Filename)
}

// MonthListing pairs a month folder with its notes
type MonthListing struct {
	Month Month
	Notes []Note
}

// YearSummary holds everything needed to compose a yearly index
type YearSummary struct {
	Year   int
	Months []MonthListing
}

// TotalNotes returns the note count across all months
func (s YearSummary) TotalNotes() int {
	total := 0
	for _, m := range s.Months {
		total += len(m.Notes)
	}
	return total
}

// VaultEntry is a folder or note encountered while walking the vault
type VaultEntry struct {
	Name    string
	Path    string
	RelPath string // relative to the vault root
	Depth   int    // 0 for entries directly under the root
	IsDir   bool
}

var (
	yearFolderRegex  = regexp.MustCompile(`^\d{4}$`)
	monthFolderRegex = regexp.MustCompile(`^(\d{4})(\d{2})$`)
	noteDateRegex    = regexp.MustCompile(`^(\d{8})(?:_.*)?$`)
)

// ParseYearFolder reports whether name is a 4-digit year folder
func ParseYearFolder(name string) (int, bool) {
	if !yearFolderRegex.MatchString(name) {
		return 0, false
	}
	year, _ := strconv.Atoi(name)
	return year, true
}

// ParseMonthFolder parses a "YYYYMM" month folder name
func ParseMonthFolder(name string) (year, month int, ok bool) {
	matches := monthFolderRegex.FindStringSubmatch(name)
	if matches == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(matches[1])
	month, _ = strconv.Atoi(matches[2])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// ParseNoteDate extracts the date from a note filename. The part before
// the first underscore must be an 8-digit YYYYMMDD run; the rest of the
// filename is free-form and never affects the result.
func ParseNoteDate(filename string) (time.Time, bool) {
	stem := strings.TrimSuffix(filename, ".md")
	matches := noteDateRegex.FindStringSubmatch(stem)
	if matches == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", matches[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthFolderName formats the folder name for a year/month pair
func MonthFolderName(year, month int) string {
	return fmt.Sprintf("%d%02d", year, month)
}

// YearIndexFilename is the name of the yearly index inside a year folder
func YearIndexFilename(year int) string {
	return fmt.Sprintf("Overview %d DailyNotes.md", year)
}

// MonthIndexFilename is the name of the monthly index inside a month folder
func MonthIndexFilename(year, month int) string {
	return fmt.Sprintf("Overview %d %02d Daily Notes.md", year, month)
}

// OverviewFilename is the vault overview written at the vault root
const OverviewFilename = "overview.md"

// IsIndexFile reports whether a filename is a generated index. Index
// files are excluded from note listings so regeneration stays idempotent.
func IsIndexFile(name string) bool {
	return name == OverviewFilename || strings.HasPrefix(name, "Overview ")
}

// WikiLink formats an Obsidian wiki link, optionally with display text
func WikiLink(target, display string) string {
	if display != "" && display != target {
		return fmt.Sprintf("[[%s|%s]]", target, display)
	}
	return fmt.Sprintf("[[%s]]", target)
}

// SortMonths sorts months chronologically
func SortMonths(months []Month) {
	slices.SortFunc(months, func(a, b Month) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Number - b.Number
	})
}

// SortNotes sorts notes by filename in ascending order
func SortNotes(notes []Note) {
	slices.SortFunc(notes, func(a, b Note) int {
		return strings.Compare(a.Filename, b.Filename)
	})
}
