// Package loading provides the spinner shown while content is fetched.
package loading

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
)

// Title is shown next to the spinner.
const Title = "Loading Portfolio..."

// View renders a centred spinner.
type View struct {
	styles  *styles.Styles
	spinner spinner.Model
	width   int
	height  int
}

// NewView creates a new loading view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.Hero),
		),
		width:  80,
		height: 24,
	}
}

// Init starts the spinner.
func (v *View) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update advances the spinner.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return v, nil
	}
	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the loading view.
func (v *View) View() string {
	content := v.spinner.View() + " " + v.styles.Muted.Render(Title)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}
