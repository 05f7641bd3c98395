// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateRevealing State = "revealing"
	StateError     State = "error"
	StateExhausted State = "exhausted"
)

// Bar displays progress through the topics, the current deep link and
// keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	link      string
	asked     int
	total     int
	citations bool
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// Width includes the style's padding, so the content gets what is left.
	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateReady, StateRevealing, StateExhausted:
		parts := []string{fmt.Sprintf("%d/%d topics", s.asked, s.total)}
		if s.link != "" {
			parts = append(parts, s.link)
		}
		return s.styles.Muted.Render(strings.Join(parts, "  "))
	}
	return ""
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case s.state == StateError:
		bindings = s.keymap.NoticeHelp()
	case s.state == StateRevealing:
		bindings = s.keymap.RevealingHelp()
	case s.citations:
		bindings = s.keymap.CitationHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetLink sets the deep link of the current topic.
func (s *Bar) SetLink(link string) {
	s.link = link
}

// Link returns the current deep link.
func (s *Bar) Link() string {
	return s.link
}

// SetProgress sets how many of total topics have been asked.
func (s *Bar) SetProgress(asked, total int) {
	s.asked = asked
	s.total = total
}

// Progress returns the asked and total topic counts.
func (s *Bar) Progress() (asked, total int) {
	return s.asked, s.total
}

// SetCitations sets whether citation hints are shown.
func (s *Bar) SetCitations(show bool) {
	s.citations = show
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
