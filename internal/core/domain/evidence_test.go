package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvidenceItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantURL string
	}{
		{
			name:    "canonical url",
			data:    `{"title":"Talk","url":"https://a.example","type":"video","why_it_matters":"shows depth"}`,
			wantURL: "https://a.example",
		},
		{
			name:    "legacy link",
			data:    `{"title":"Talk","link":"https://b.example","type":"video","why_it_matters":"shows depth"}`,
			wantURL: "https://b.example",
		},
		{
			name:    "url wins over link",
			data:    `{"title":"Talk","url":"https://a.example","link":"https://b.example"}`,
			wantURL: "https://a.example",
		},
		{
			name:    "neither",
			data:    `{"title":"Talk"}`,
			wantURL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item EvidenceItem
			require.NoError(t, json.Unmarshal([]byte(tt.data), &item))
			assert.Equal(t, "Talk", item.Title)
			assert.Equal(t, tt.wantURL, item.URL)
		})
	}
}

func TestEvidenceMap_Decode(t *testing.T) {
	data := `{
		"about": [
			{"title":"CV","url":"https://cv.example","type":"document","why_it_matters":"history"},
			{"title":"Blog","link":"https://blog.example","type":"article","why_it_matters":"voice"}
		]
	}`

	var m EvidenceMap
	require.NoError(t, json.Unmarshal([]byte(data), &m))

	items := m.For("about")
	require.Len(t, items, 2)
	assert.Equal(t, "CV", items[0].Title)
	assert.Equal(t, "https://blog.example", items[1].URL)
	assert.Equal(t, "voice", items[1].WhyItMatters)
}

func TestEvidenceMap_For_Missing(t *testing.T) {
	var m EvidenceMap

	items := m.For("nope")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
