package domain

import (
	"fmt"
	"time"
)

// Metadata is the key-value block embedded at the top of every generated
// index file. Date is set once when the index is first generated and
// preserved on regeneration; Updated is refreshed on every run.
type Metadata struct {
	Title   string
	Author  string
	Type    string
	Date    string // YYYY-MM-DD
	Updated string // YYYY-MM-DD
	Tags    []string
}

// Index types written into the metadata block
const (
	TypeTableOfContents = "TableOfContents"
	TypeVaultOverview   = "VaultOverview"
)

const dateLayout = "2006-01-02"

// ResolveDate keeps the date from a previously generated index, falling
// back to now when there is no prior index or its header was unreadable.
func ResolveDate(previous string, now time.Time) string {
	if previous != "" {
		return previous
	}
	return now.Format(dateLayout)
}

// YearIndexMetadata composes the metadata block for a yearly index.
// Tags carry the base set, the lowercase name of every month that has a
// folder, and the year itself.
func YearIndexMetadata(summary YearSummary, author, previousDate string, now time.Time) Metadata {
	tags := []string{"daily", "overview", "collection"}
	for _, m := range summary.Months {
		tags = append(tags, m.Month.Tag())
	}
	tags = append(tags, fmt.Sprintf("%d", summary.Year))

	return Metadata{
		Title:   fmt.Sprintf("Overview %d Daily Notes", summary.Year),
		Author:  author,
		Type:    TypeTableOfContents,
		Date:    ResolveDate(previousDate, now),
		Updated: now.Format(dateLayout),
		Tags:    tags,
	}
}

// MonthIndexMetadata composes the metadata block for a monthly index
func MonthIndexMetadata(month Month, author, previousDate string, now time.Time) Metadata {
	return Metadata{
		Title:   fmt.Sprintf("Overview %d %02d Daily Notes", month.Year, month.Number),
		Author:  author,
		Type:    TypeTableOfContents,
		Date:    ResolveDate(previousDate, now),
		Updated: now.Format(dateLayout),
		Tags:    []string{month.Tag(), fmt.Sprintf("%d", month.Year), "daily", "overview", "collection"},
	}
}

// OverviewMetadata composes the metadata block for the vault overview
func OverviewMetadata(author, previousDate string, now time.Time) Metadata {
	return Metadata{
		Title:   "Vault Overview",
		Author:  author,
		Type:    TypeVaultOverview,
		Date:    ResolveDate(previousDate, now),
		Updated: now.Format(dateLayout),
		Tags:    []string{"overview", "vault"},
	}
}
