package loading

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.Init())
}

func TestView_View(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(60, 10)

	assert.Contains(t, v.View(), Title)
}

func TestView_Update_IgnoresOtherMessages(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_AdvancesSpinner(t *testing.T) {
	v := NewView(nil)

	msg := v.Init()()
	_, cmd := v.Update(msg)

	assert.NotNil(t, cmd)
}
