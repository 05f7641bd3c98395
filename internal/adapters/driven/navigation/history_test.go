package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestNewHistory_Empty(t *testing.T) {
	h := NewHistory(nil)

	assert.Empty(t, h.QueryParam("q"))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "folio://", h.Link())
}

func TestWithTopic(t *testing.T) {
	assert.Equal(t, "about", WithTopic("about").QueryParam("q"))
	assert.Empty(t, WithTopic("").QueryParam("q"))
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"empty", "", ""},
		{"full link", "folio://?q=about", "about"},
		{"bare query", "q=skills", "skills"},
		{"leading question mark", "?q=next", "next"},
		{"escaped", "folio://?q=what%27s+next", "what's next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseLink(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.QueryParam("q"))
		})
	}
}

func TestParseLink_WrongScheme(t *testing.T) {
	_, err := ParseLink("https://example.com/?q=about")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory_SetQueryParamPushes(t *testing.T) {
	h := NewHistory(nil)

	require.NoError(t, h.SetQueryParam("q", "about"))
	require.NoError(t, h.SetQueryParam("q", "skills"))

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "skills", h.QueryParam("q"))
	assert.Equal(t, "folio://?q=skills", h.Link())
}

func TestHistory_SetQueryParam_EmptyName(t *testing.T) {
	h := NewHistory(nil)

	err := h.SetQueryParam("", "x")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, h.Len())
}

func TestHistory_BackForward(t *testing.T) {
	h := NewHistory(nil)
	require.NoError(t, h.SetQueryParam("q", "about"))
	require.NoError(t, h.SetQueryParam("q", "skills"))

	assert.True(t, h.Back())
	assert.Equal(t, "about", h.QueryParam("q"))
	assert.True(t, h.Back())
	assert.Empty(t, h.QueryParam("q"))
	assert.False(t, h.Back())

	assert.True(t, h.Forward())
	assert.True(t, h.Forward())
	assert.Equal(t, "skills", h.QueryParam("q"))
	assert.False(t, h.Forward())
}

func TestHistory_PushAfterBackDropsForwardEntries(t *testing.T) {
	h := NewHistory(nil)
	require.NoError(t, h.SetQueryParam("q", "about"))
	require.NoError(t, h.SetQueryParam("q", "skills"))
	require.True(t, h.Back())

	require.NoError(t, h.SetQueryParam("q", "next"))

	assert.Equal(t, 3, h.Len())
	assert.False(t, h.Forward())
	assert.True(t, h.Back())
	assert.Equal(t, "about", h.QueryParam("q"))
}

func TestHistory_EntriesAreIndependent(t *testing.T) {
	h := NewHistory(nil)
	require.NoError(t, h.SetQueryParam("q", "about"))
	require.NoError(t, h.SetQueryParam("q", "skills"))

	require.True(t, h.Back())

	assert.Equal(t, "about", h.QueryParam("q"))
}
