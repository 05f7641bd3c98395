// Package notice provides the blocking notice shown when content fails to load.
package notice

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
)

// Prefix starts every failure notice.
const Prefix = "Failed to initialize portfolio content: "

// View renders the failure and offers a reload.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	err    error
	width  int
	height int
}

// NewView creates a new notice view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetError sets the failure to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Err returns the failure being displayed.
func (v *View) Err() error {
	return v.err
}

// Update handles reload and quit keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case keymap.Matches(keyMsg.String(), v.keymap.Reload):
		return v, func() tea.Msg { return messages.ReloadRequested{} }
	case keymap.Matches(keyMsg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Message returns the notice text.
func (v *View) Message() string {
	if v.err == nil {
		return Prefix + "unknown error"
	}
	return Prefix + v.err.Error()
}

// View renders the notice.
func (v *View) View() string {
	reload := v.keymap.Reload.Help()
	quit := v.keymap.Quit.Help()

	body := v.styles.Error.Render(v.Message()) + "\n\n" +
		v.styles.Help.Render(fmt.Sprintf("[%s] %s  [%s] %s", reload.Key, reload.Desc, quit.Key, quit.Desc))

	box := v.styles.Notice.Width(min(v.width-4, 72)).Render(body)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}
