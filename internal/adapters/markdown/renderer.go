package markdown

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// Renderer implements ports.IndexRenderer for Obsidian-flavored Markdown
type Renderer struct{}

// NewRenderer creates a new markdown renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// metadataEnvelope mirrors the metadata block's YAML layout
type metadataEnvelope struct {
	Title   string   `yaml:"title"`
	Author  string   `yaml:"author"`
	Type    string   `yaml:"type"`
	Date    string   `yaml:"date"`
	Updated string   `yaml:"updated"`
	Tags    []string `yaml:"tags"`
}

// writeMetadata emits the frontmatter block at the top of an index file.
// Marshalling a flat struct of strings and string slices cannot fail.
func writeMetadata(buf *bytes.Buffer, meta domain.Metadata) {
	env := metadataEnvelope{
		Title:   meta.Title,
		Author:  meta.Author,
		Type:    meta.Type,
		Date:    meta.Date,
		Updated: meta.Updated,
		Tags:    meta.Tags,
	}

	yamlBytes, _ := yaml.Marshal(env)

	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
}

// ParseMetadata reads the metadata block back from an existing index file.
// Content without a frontmatter block yields a zero Metadata and no error;
// a present but malformed block returns an error.
func (r *Renderer) ParseMetadata(content []byte) (domain.Metadata, error) {
	var env metadataEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(content), &env); err != nil {
		return domain.Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return domain.Metadata{
		Title:   env.Title,
		Author:  env.Author,
		Type:    env.Type,
		Date:    env.Date,
		Updated: env.Updated,
		Tags:    env.Tags,
	}, nil
}

// ScanNote extracts the first level-1 heading and the rune count from
// raw note content.
func (r *Renderer) ScanNote(content []byte) ports.NoteInfo {
	info := ports.NoteInfo{Chars: utf8.RuneCount(content)}

	reader := text.NewReader(content)
	doc := goldmark.DefaultParser().Parse(reader)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				info.Title = string(n.Text(content))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return info
}
