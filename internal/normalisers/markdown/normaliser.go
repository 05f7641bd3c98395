// Package markdown splits the Q&A markdown document into titled sections.
package markdown

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.SectionParser = (*Normaliser)(nil)

// sectionHeading matches a level-2 heading marker at the start of a line.
// \s+ may consume a newline, so "##\nTitle" still opens a section titled "Title".
var sectionHeading = regexp.MustCompile(`(?m)^##\s+`)

// Normaliser parses Q&A markdown.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Parse implements driven.SectionParser.
func (n *Normaliser) Parse(markdown string) []domain.Section {
	return ParseSections(markdown)
}

// ParseSections splits markdown on level-2 headings.
//
// Text before the first heading is discarded. For every other fragment the
// first line (trimmed) is the title and the remaining lines, joined and
// trimmed, are the body. Deeper headings stay in the body verbatim.
func ParseSections(markdown string) []domain.Section {
	parts := sectionHeading.Split(markdown, -1)
	if len(parts) < 2 {
		return []domain.Section{}
	}

	sections := make([]domain.Section, 0, len(parts)-1)
	for _, part := range parts[1:] {
		lines := strings.Split(part, "\n")
		sections = append(sections, domain.Section{
			Title: strings.TrimSpace(lines[0]),
			Body:  strings.TrimSpace(strings.Join(lines[1:], "\n")),
		})
	}
	return sections
}
