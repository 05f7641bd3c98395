package domain

// Turn is one asked topic in the conversation.
// Turns are appended and never mutated once created.
type Turn struct {
	// ID uniquely identifies the turn, even for repeated topics.
	ID string `json:"id"`

	// Label is the topic as shown to the visitor.
	Label string `json:"label"`

	// InternalKey is the keyword key the turn was resolved from.
	InternalKey string `json:"internal_key"`

	// Section is nil when no section matches the label.
	Section *Section `json:"section,omitempty"`

	// Evidence lists citations for the key. Nil when Section is nil.
	Evidence []EvidenceItem `json:"evidence,omitempty"`
}

// Available reports whether the turn resolved to a section.
func (t Turn) Available() bool {
	return t.Section != nil
}

// Body returns the answer text, or ErrContentUnavailable.
func (t Turn) Body() (string, error) {
	if t.Section == nil {
		return "", ErrContentUnavailable
	}
	return t.Section.Body, nil
}
