package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/views/conversation"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/views/loading"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/views/notice"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Options configures greeting text and pacing.
type Options struct {
	Profile domain.ProfileSettings
	Reveal  domain.RevealSettings
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	loadingView      *loading.View
	noticeView       *notice.View
	conversationView *conversation.View

	// conv is the current conversation, nil until content loads.
	conv driving.ConversationService

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last load failure.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	convView := conversation.NewView(s, km, ports.Revealer, conversation.Options{
		Pacing:         opts.Reveal.Pacing(),
		GreetingPacing: domain.DefaultPacing().WithBaseDelay(domain.DefaultGreetingDelay),
		Profile:        opts.Profile,
		Link:           ports.Link,
	})

	return &App{
		ports:            ports,
		ctx:              context.Background(),
		styles:           s,
		loadingView:      loading.NewView(s),
		noticeView:       notice.NewView(s, km),
		conversationView: convView,
		currentView:      messages.ViewLoading,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the spinner and the first content load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("folio"),
		a.loadingView.Init(),
		a.load(),
	)
}

// load runs the snapshot loader off the event loop.
func (a *App) load() tea.Cmd {
	loader := a.ports.Loader
	ctx := a.ctx
	return func() tea.Msg {
		snapshot, err := loader.Load(ctx)
		return messages.SnapshotLoaded{Snapshot: snapshot, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SnapshotLoaded:
		return a, a.handleLoaded(msg)

	case messages.ReloadRequested:
		logger.Info("Reloading portfolio content")
		a.err = nil
		a.currentView = messages.ViewLoading
		return a, tea.Batch(a.loadingView.Init(), a.load())

	case messages.Quit:
		a.conversationView.Stop()
		return a, tea.Quit

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			a.conversationView.Stop()
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewLoading:
			if msg.String() == "q" {
				return a, tea.Quit
			}
		case messages.ViewNotice:
			a.noticeView, cmd = a.noticeView.Update(msg)
		case messages.ViewConversation:
			a.conversationView, cmd = a.conversationView.Update(msg)
		}
		return a, cmd
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewLoading:
		a.loadingView, cmd = a.loadingView.Update(msg)
	case messages.ViewConversation:
		a.conversationView, cmd = a.conversationView.Update(msg)
	case messages.ViewNotice:
		// Notice view only handles keys
	}

	return a, cmd
}

func (a *App) handleLoaded(msg messages.SnapshotLoaded) tea.Cmd {
	if msg.Err != nil {
		logger.Error("Failed to load content: %v", msg.Err)
		a.err = msg.Err
		a.noticeView.SetError(msg.Err)
		a.currentView = messages.ViewNotice
		return nil
	}

	a.conv = a.ports.Conversations(msg.Snapshot)
	a.currentView = messages.ViewConversation
	return a.conversationView.Start(a.conv)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewNotice:
		return a.noticeView.View()
	case messages.ViewConversation:
		return a.conversationView.View()
	default:
		return a.loadingView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	a.conversationView.Stop()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Conversation returns the active conversation, or nil before content loads.
func (a *App) Conversation() driving.ConversationService {
	return a.conv
}

// ConversationView returns the conversation view component.
func (a *App) ConversationView() *conversation.View {
	return a.conversationView
}

// Err returns the last load failure.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.loadingView.SetDimensions(width, height)
	a.noticeView.SetDimensions(width, height)
	a.conversationView.SetDimensions(width, height)
}
