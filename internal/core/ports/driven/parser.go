package driven

import "github.com/custodia-labs/folio/internal/core/domain"

// SectionParser converts raw markdown into ordered sections.
// Implementations never fail; malformed input degrades to fewer or odd sections.
type SectionParser interface {
	Parse(markdown string) []domain.Section
}
