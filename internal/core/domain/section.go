package domain

import "strings"

// Section is a titled block of answer text derived from one level-2 heading
// of the Q&A markdown. Body is plain pre-formatted text.
type Section struct {
	// Title is matched case-insensitively against keyword labels.
	Title string `json:"title"`

	// Body is the trimmed text up to the next heading. May be empty.
	Body string `json:"body"`
}

// Matches reports whether the section title equals label, ignoring case.
func (s Section) Matches(label string) bool {
	return strings.EqualFold(s.Title, label)
}

// FindSection returns the first section whose title matches label.
// Titles need not be unique; order of appearance decides.
func FindSection(sections []Section, label string) (*Section, bool) {
	for i := range sections {
		if sections[i].Matches(label) {
			s := sections[i]
			return &s, true
		}
	}
	return nil, false
}
