package domain

// Snapshot is the immutable bundle of keywords, evidence and parsed sections
// loaded once at startup. It is read-only after construction.
type Snapshot struct {
	keywords *Keywords
	evidence EvidenceMap
	sections []Section
}

// NewSnapshot assembles a snapshot. The inputs are copied so later mutation
// by the caller cannot leak in.
func NewSnapshot(keywords *Keywords, evidence EvidenceMap, sections []Section) *Snapshot {
	if keywords == nil {
		keywords = NewKeywords(nil)
	}

	ev := make(EvidenceMap, len(evidence))
	for key, items := range evidence {
		cp := make([]EvidenceItem, len(items))
		copy(cp, items)
		ev[key] = cp
	}

	secs := make([]Section, len(sections))
	copy(secs, sections)

	return &Snapshot{
		keywords: keywords,
		evidence: ev,
		sections: secs,
	}
}

// Keywords returns the keyword mapping.
func (s *Snapshot) Keywords() *Keywords {
	return s.keywords
}

// Topics returns all topics in keyword order.
func (s *Snapshot) Topics() []Topic {
	return s.keywords.Topics()
}

// Sections returns the parsed sections in document order.
func (s *Snapshot) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Label resolves an internal key back to its label.
func (s *Snapshot) Label(key string) (string, bool) {
	return s.keywords.Label(key)
}

// Key resolves a label to its internal key.
func (s *Snapshot) Key(label string) (string, bool) {
	return s.keywords.Key(label)
}

// HasKey reports whether key is a known internal key.
func (s *Snapshot) HasKey(key string) bool {
	return s.keywords.HasKey(key)
}

// SectionFor returns the first section whose title matches label,
// ignoring case.
func (s *Snapshot) SectionFor(label string) (*Section, bool) {
	return FindSection(s.sections, label)
}

// EvidenceFor returns the citations for key; missing keys yield an empty slice.
func (s *Snapshot) EvidenceFor(key string) []EvidenceItem {
	return s.evidence.For(key)
}
