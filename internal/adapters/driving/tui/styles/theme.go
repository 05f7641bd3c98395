// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Faint is for text that is not yet relevant, such as citations
	// under an answer that is still being typed.
	Faint lipgloss.Color

	// Bubble is the background of the visitor's question.
	Bubble lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F4F4F5"), // Zinc 100
		Secondary:  lipgloss.Color("#818CF8"), // Indigo
		Foreground: lipgloss.Color("#D4D4D8"), // Zinc 300
		Muted:      lipgloss.Color("#71717A"), // Zinc 500
		Faint:      lipgloss.Color("#3F3F46"), // Zinc 700
		Bubble:     lipgloss.Color("#27272A"), // Zinc 800
		Error:      lipgloss.Color("#F87171"), // Red
		Border:     lipgloss.Color("#52525B"), // Zinc 600
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Hero is the typed greeting.
	Hero lipgloss.Style

	// Tagline sits under the greeting.
	Tagline lipgloss.Style

	// Question is the visitor's bubble.
	Question lipgloss.Style

	// Answer is the typed answer body.
	Answer lipgloss.Style

	// Unavailable is the notice shown instead of a missing answer.
	Unavailable lipgloss.Style

	// Heading labels a block such as citations or suggestions.
	Heading lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Faint style for dimmed content.
	Faint lipgloss.Style

	// Link style for outbound URLs.
	Link lipgloss.Style

	// Card is a citation or suggestion box.
	Card lipgloss.Style

	// SelectedCard is the highlighted suggestion or citation.
	SelectedCard lipgloss.Style

	// Marker is the end of conversation pill.
	Marker lipgloss.Style

	// Notice is the bordered box for the load failure.
	Notice lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Hero: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Tagline: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Question: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Bubble).
			Padding(0, 2),

		Answer: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Unavailable: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Faint: lipgloss.NewStyle().
			Foreground(theme.Faint),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Secondary),

		Card: card,

		SelectedCard: card.
			BorderForeground(theme.Primary).
			Bold(true),

		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Muted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Faint).
			Padding(0, 2),

		Notice: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 3),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#18181B")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
