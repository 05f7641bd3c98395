package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Topic is one askable entry of the keyword mapping.
type Topic struct {
	// Label is the human-readable question or topic name.
	Label string `json:"label"`

	// Key is the opaque internal key used for deep-linking and evidence.
	Key string `json:"key"`
}

// Keywords is the ordered label to key mapping, kept bidirectional.
//
// Order is the order of appearance in the source JSON object. The reverse
// mapping assumes keys are unique; when they are not, the first label in
// order wins and the offending entries are reported by Duplicates.
type Keywords struct {
	topics     []Topic
	byLabel    map[string]int
	byKey      map[string]string
	duplicates []Topic
}

// NewKeywords builds a bidirectional mapping from ordered topics.
// A repeated label keeps its first position and takes the later key.
func NewKeywords(topics []Topic) *Keywords {
	k := &Keywords{
		topics:  make([]Topic, 0, len(topics)),
		byLabel: make(map[string]int, len(topics)),
		byKey:   make(map[string]string, len(topics)),
	}

	for _, t := range topics {
		if idx, ok := k.byLabel[t.Label]; ok {
			k.topics[idx].Key = t.Key
			continue
		}
		k.byLabel[t.Label] = len(k.topics)
		k.topics = append(k.topics, t)
	}

	for _, t := range k.topics {
		if _, ok := k.byKey[t.Key]; ok {
			k.duplicates = append(k.duplicates, t)
			continue
		}
		k.byKey[t.Key] = t.Label
	}

	return k
}

// Topics returns all topics in mapping order.
func (k *Keywords) Topics() []Topic {
	if k == nil {
		return nil
	}
	out := make([]Topic, len(k.topics))
	copy(out, k.topics)
	return out
}

// Len returns the number of topics.
func (k *Keywords) Len() int {
	if k == nil {
		return 0
	}
	return len(k.topics)
}

// Key returns the internal key for a label.
func (k *Keywords) Key(label string) (string, bool) {
	if k == nil {
		return "", false
	}
	idx, ok := k.byLabel[label]
	if !ok {
		return "", false
	}
	return k.topics[idx].Key, true
}

// Label returns the first label mapped to key.
func (k *Keywords) Label(key string) (string, bool) {
	if k == nil {
		return "", false
	}
	label, ok := k.byKey[key]
	return label, ok
}

// HasKey reports whether key is a value of the mapping.
func (k *Keywords) HasKey(key string) bool {
	_, ok := k.Label(key)
	return ok
}

// Duplicates returns topics whose key was already taken by an earlier label.
func (k *Keywords) Duplicates() []Topic {
	if k == nil {
		return nil
	}
	out := make([]Topic, len(k.duplicates))
	copy(out, k.duplicates)
	return out
}

// Validate returns ErrDuplicateKey if the mapping is not one-to-one.
func (k *Keywords) Validate() error {
	if len(k.Duplicates()) == 0 {
		return nil
	}
	d := k.duplicates[0]
	return fmt.Errorf("%w: %q (label %q)", ErrDuplicateKey, d.Key, d.Label)
}

// UnmarshalJSON decodes a flat string to string object, preserving key order.
func (k *Keywords) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*k = *NewKeywords(nil)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: keywords must be a JSON object", ErrInvalidInput)
	}

	var topics []Topic
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected keyword token %v", ErrInvalidInput, tok)
		}

		var key string
		if err := dec.Decode(&key); err != nil {
			return fmt.Errorf("keyword %q: %w", label, err)
		}
		topics = append(topics, Topic{Label: label, Key: key})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*k = *NewKeywords(topics)
	return nil
}

// MarshalJSON encodes the mapping as a JSON object in mapping order.
func (k *Keywords) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range k.Topics() {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(t.Label)
		if err != nil {
			return nil, err
		}
		key, err := json.Marshal(t.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(key)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
