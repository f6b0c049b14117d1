package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// RenderOverview composes the vault overview: metadata block, heading
// with generation timestamp, then the vault tree. Folders become
// headings whose level tracks their depth; notes become wiki links
// with their character count, aliased to the note's title when it has
// one.
func (r *Renderer) RenderOverview(items []ports.OverviewItem, meta domain.Metadata, generated time.Time) []byte {
	var buf bytes.Buffer
	writeMetadata(&buf, meta)

	buf.WriteString("# Vault Overview\n\n")
	fmt.Fprintf(&buf, "Created: %s\n\n", generated.Format("2006-01-02 15:04:05"))

	for _, item := range items {
		if item.Entry.IsDir {
			level := item.Entry.Depth + 2
			if level > 6 {
				level = 6
			}
			fmt.Fprintf(&buf, "%s %s\n\n", strings.Repeat("#", level), item.Entry.Name)
			continue
		}

		stem := strings.TrimSuffix(item.Entry.Name, ".md")
		fmt.Fprintf(&buf, "- %s (%d)\n", domain.WikiLink(stem, item.Info.Title), item.Info.Chars)
	}
	buf.WriteString("\n")

	return buf.Bytes()
}
