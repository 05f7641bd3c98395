package domain

import "encoding/json"

// EvidenceItem is a citation supporting an answer.
// URL is surfaced as an outbound link without validation.
type EvidenceItem struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Type         string `json:"type"`
	WhyItMatters string `json:"why_it_matters"`
}

// UnmarshalJSON accepts the legacy "link" field when "url" is absent.
func (e *EvidenceItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title        string `json:"title"`
		URL          string `json:"url"`
		Link         string `json:"link"`
		Type         string `json:"type"`
		WhyItMatters string `json:"why_it_matters"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = EvidenceItem{
		Title:        raw.Title,
		URL:          raw.URL,
		Type:         raw.Type,
		WhyItMatters: raw.WhyItMatters,
	}
	if e.URL == "" {
		e.URL = raw.Link
	}
	return nil
}

// EvidenceMap maps internal keys to their ordered citations.
type EvidenceMap map[string][]EvidenceItem

// For returns the citations for key, or an empty slice.
func (m EvidenceMap) For(key string) []EvidenceItem {
	items, ok := m[key]
	if !ok {
		return []EvidenceItem{}
	}
	out := make([]EvidenceItem, len(items))
	copy(out, items)
	return out
}
