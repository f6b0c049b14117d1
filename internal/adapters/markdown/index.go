package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"jotdex/internal/domain"
)

// RenderYearIndex composes a yearly index: metadata block, statistics
// section, then a table of contents with one section per month linking
// the monthly index followed by every note.
func (r *Renderer) RenderYearIndex(summary domain.YearSummary, meta domain.Metadata) []byte {
	var buf bytes.Buffer
	writeMetadata(&buf, meta)

	buf.WriteString("## Statistics\n\n")
	fmt.Fprintf(&buf, "**Total number of notes in %d: %d**\n\n", summary.Year, summary.TotalNotes())
	for _, m := range summary.Months {
		fmt.Fprintf(&buf, "%s: %d notes\n", m.Month.Name(), len(m.Notes))
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "# Journal %d\n\n", summary.Year)
	for _, m := range summary.Months {
		fmt.Fprintf(&buf, "## %s\n\n", m.Month.Name())
		monthIndex := domain.MonthIndexFilename(m.Month.Year, m.Month.Number)
		fmt.Fprintf(&buf, "- %s\n", domain.WikiLink(strings.TrimSuffix(monthIndex, ".md"), ""))
		for _, note := range m.Notes {
			fmt.Fprintf(&buf, "- %s\n", domain.WikiLink(note.Stem(), ""))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// RenderMonthIndex composes a monthly index: metadata block, heading,
// then one link per note. An empty month renders a heading with no links.
func (r *Renderer) RenderMonthIndex(listing domain.MonthListing, meta domain.Metadata) []byte {
	var buf bytes.Buffer
	writeMetadata(&buf, meta)

	fmt.Fprintf(&buf, "# Journal %s %d\n\n", listing.Month.Name(), listing.Month.Year)
	for _, note := range listing.Notes {
		fmt.Fprintf(&buf, "- %s\n", domain.WikiLink(note.Stem(), ""))
	}
	buf.WriteString("\n")

	return buf.Bytes()
}
