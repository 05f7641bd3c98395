// Package conversation provides the main conversation view for the TUI:
// the typed greeting, the turns asked so far and the suggestion grid.
package conversation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/folio/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Text shown by the view.
const (
	UnavailableText  = "Content unavailable for this section."
	SkipText         = "Reveal Full Answer"
	CitationsTitle   = "Verification Citations"
	ExploreTitle     = "Explore my background and experience by selecting a topic"
	RelatedTitle     = "Related topics you might find interesting"
	EndMarker        = "End of Conversation"
	ContinueHint     = "Select a topic above to continue..."
	twoColumnMinimum = 70
)

// turnView is one rendered turn and the reveal typing its answer.
// reveal is nil for content-unavailable turns.
type turnView struct {
	turn     domain.Turn
	reveal   driving.Reveal
	expanded map[int]bool
}

func (t *turnView) done() bool {
	return t.reveal == nil || t.reveal.State() == domain.RevealRevealed
}

// Options configures pacing and greeting text.
type Options struct {
	// Pacing is used for answer bodies.
	Pacing domain.Pacing

	// GreetingPacing is used for the hero greeting.
	GreetingPacing domain.Pacing

	// Profile holds the greeting and tagline.
	Profile domain.ProfileSettings

	// Link returns the current deep link. Optional.
	Link func() string
}

// View renders the conversation and handles topic selection.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	viewport  viewport.Model

	revealer driving.Revealer
	conv     driving.ConversationService
	opts     Options

	greeting driving.Reveal
	turns    []*turnView

	// cursor indexes the remaining topics.
	cursor int

	// citation indexes the evidence of the last turn, -1 for none.
	citation int

	// ticks wakes the event loop when any reveal advances.
	ticks     chan struct{}
	listening bool

	width  int
	height int
}

// NewView creates a new conversation view.
func NewView(s *styles.Styles, km *keymap.KeyMap, revealer driving.Revealer, opts Options) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		viewport:  viewport.New(80, 23),
		revealer:  revealer,
		opts:      opts,
		citation:  -1,
		ticks:     make(chan struct{}, 1),
		width:     80,
		height:    24,
	}
	return v
}

// Start binds the view to a conversation, resumes it from the deep link and
// begins typing the greeting. Any reveals from a previous conversation are
// cancelled.
func (v *View) Start(conv driving.ConversationService) tea.Cmd {
	v.Stop()

	v.conv = conv
	v.cursor = 0
	v.citation = -1
	v.turns = nil

	conv.Initialize()
	for _, t := range conv.Turns() {
		v.turns = append(v.turns, v.startTurn(t))
	}

	v.greeting = v.revealer.Start(v.opts.Profile.Greeting, v.opts.GreetingPacing, v.hooks())
	v.sync()

	if v.listening {
		return nil
	}
	v.listening = true
	return v.listen()
}

// Stop cancels every running reveal.
func (v *View) Stop() {
	if v.greeting != nil {
		v.greeting.Cancel()
	}
	for _, t := range v.turns {
		if t.reveal != nil {
			t.reveal.Cancel()
		}
	}
}

func (v *View) startTurn(turn domain.Turn) *turnView {
	tv := &turnView{turn: turn, expanded: make(map[int]bool)}
	body, err := turn.Body()
	if err != nil {
		return tv
	}
	tv.reveal = v.revealer.Start(body, v.opts.Pacing, v.hooks())
	return tv
}

// hooks coalesce every reveal step into at most one pending wake-up.
func (v *View) hooks() driving.RevealHooks {
	wake := func() {
		select {
		case v.ticks <- struct{}{}:
		default:
		}
	}
	return driving.RevealHooks{
		OnStep:     func(string) { wake() },
		OnComplete: wake,
	}
}

// listen waits for the next reveal wake-up.
func (v *View) listen() tea.Cmd {
	ticks := v.ticks
	return func() tea.Msg {
		<-ticks
		return messages.RevealTicked{}
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the conversation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RevealTicked:
		v.sync()
		return v, v.listen()

	case messages.TopicSelected:
		v.SelectTopic(msg.Key)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.conv == nil {
		return v, nil
	}

	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Skip):
		v.SkipLatest()

	case keymap.Matches(keyStr, v.keymap.ScrollUp):
		v.viewport.SetYOffset(v.viewport.YOffset - v.viewport.Height)

	case keymap.Matches(keyStr, v.keymap.ScrollDown):
		v.viewport.SetYOffset(v.viewport.YOffset + v.viewport.Height)

	case keymap.Matches(keyStr, v.keymap.NextCitation):
		v.nextCitation()

	case keymap.Matches(keyStr, v.keymap.ToggleCitation):
		v.toggleCitation()

	case keymap.Matches(keyStr, v.keymap.Select):
		topics := v.suggestions()
		if v.cursor < len(topics) {
			key := topics[v.cursor].Key
			return v, func() tea.Msg { return messages.TopicSelected{Key: key} }
		}

	case keymap.Matches(keyStr, v.keymap.Left):
		v.moveCursor(-1)

	case keymap.Matches(keyStr, v.keymap.Right):
		v.moveCursor(1)

	case keymap.Matches(keyStr, v.keymap.Up):
		v.moveCursor(-v.columns())

	case keymap.Matches(keyStr, v.keymap.Down):
		v.moveCursor(v.columns())
	}

	return v, nil
}

// SelectTopic asks key and starts typing its answer.
func (v *View) SelectTopic(key string) {
	if v.conv == nil {
		return
	}
	turn := v.conv.SelectTopic(key)
	v.turns = append(v.turns, v.startTurn(turn))
	v.cursor = 0
	v.citation = -1
	v.sync()
	v.viewport.GotoBottom()
}

// SkipLatest reveals the last answer in full.
func (v *View) SkipLatest() {
	last := v.last()
	if last == nil || last.reveal == nil {
		return
	}
	last.reveal.Skip()
	v.sync()
}

// sync shows suggestions once the last answer is fully visible and
// refreshes the status bar and viewport.
func (v *View) sync() {
	if v.conv == nil {
		return
	}

	if last := v.last(); last != nil && last.done() && !v.conv.SuggestionsVisible() {
		v.conv.RevealSuggestions()
	}

	atBottom := v.viewport.AtBottom()
	v.viewport.SetContent(v.renderContent())
	if atBottom {
		v.viewport.GotoBottom()
	}

	v.syncStatus()
}

func (v *View) syncStatus() {
	total := v.conv.Snapshot().Keywords().Len()
	v.statusbar.SetProgress(total-len(v.conv.RemainingTopics()), total)
	if v.opts.Link != nil {
		v.statusbar.SetLink(v.opts.Link())
	}

	last := v.last()
	switch {
	case last != nil && !last.done():
		v.statusbar.SetState(status.StateRevealing)
	case v.conv.Exhausted():
		v.statusbar.SetState(status.StateExhausted)
	default:
		v.statusbar.SetState(status.StateReady)
	}
	v.statusbar.SetCitations(last != nil && last.done() && len(last.turn.Evidence) > 0)
}

func (v *View) last() *turnView {
	if len(v.turns) == 0 {
		return nil
	}
	return v.turns[len(v.turns)-1]
}

// suggestions returns the selectable topics, or nil while hidden.
func (v *View) suggestions() []domain.Topic {
	if v.conv == nil || !v.conv.SuggestionsVisible() {
		return nil
	}
	return v.conv.RemainingTopics()
}

func (v *View) columns() int {
	if v.width >= twoColumnMinimum {
		return 2
	}
	return 1
}

func (v *View) moveCursor(delta int) {
	n := len(v.suggestions())
	if n == 0 {
		return
	}
	next := v.cursor + delta
	if next < 0 || next >= n {
		return
	}
	v.cursor = next
	v.refresh()
}

func (v *View) nextCitation() {
	last := v.last()
	if last == nil || !last.done() || len(last.turn.Evidence) == 0 {
		return
	}
	v.citation = (v.citation + 1) % len(last.turn.Evidence)
	v.refresh()
}

func (v *View) toggleCitation() {
	last := v.last()
	if last == nil || v.citation < 0 || v.citation >= len(last.turn.Evidence) {
		return
	}
	last.expanded[v.citation] = !last.expanded[v.citation]
	v.refresh()
}

func (v *View) refresh() {
	offset := v.viewport.YOffset
	v.viewport.SetContent(v.renderContent())
	v.viewport.SetYOffset(offset)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)

	v.viewport.Width = width
	v.viewport.Height = max(height-1, 1)
	if v.conv != nil {
		v.refresh()
	}
}

// View renders the conversation.
func (v *View) View() string {
	return v.viewport.View() + "\n" + v.statusbar.View()
}

func (v *View) renderContent() string {
	var b strings.Builder

	b.WriteString(v.renderHero())

	for i, t := range v.turns {
		b.WriteString("\n\n")
		b.WriteString(v.renderTurn(t, i == len(v.turns)-1))
	}

	switch {
	case v.conv.Exhausted():
		b.WriteString("\n\n")
		b.WriteString(v.styles.Marker.Render(EndMarker))
	case v.conv.SuggestionsVisible():
		b.WriteString("\n\n")
		b.WriteString(v.renderSuggestions())
		if len(v.turns) > 0 {
			b.WriteString("\n\n")
			b.WriteString(v.styles.Faint.Render(ContinueHint))
		}
	}

	return b.String()
}

func (v *View) renderHero() string {
	if v.greeting == nil {
		return ""
	}
	hero := v.styles.Hero.Render(v.greeting.Text())
	if v.greeting.State() == domain.RevealRevealed && v.opts.Profile.Tagline != "" {
		hero += "\n" + v.styles.Tagline.Render(v.opts.Profile.Tagline)
	}
	return hero
}

func (v *View) renderTurn(t *turnView, isLast bool) string {
	width := v.contentWidth()
	parts := []string{v.styles.Question.Render(t.turn.Label)}

	if t.reveal == nil {
		parts = append(parts, v.styles.Unavailable.Render(UnavailableText))
		return strings.Join(parts, "\n\n")
	}

	parts = append(parts, v.styles.Answer.Width(width).Render(t.reveal.Text()))

	if isLast && !t.done() {
		skip := v.keymap.Skip.Help()
		parts = append(parts, v.styles.Help.Render(fmt.Sprintf("[%s] %s", skip.Key, SkipText)))
	}

	if len(t.turn.Evidence) > 0 {
		parts = append(parts, v.renderCitations(t, isLast))
	}

	return strings.Join(parts, "\n\n")
}

// renderCitations dims the cards until the answer is fully typed.
func (v *View) renderCitations(t *turnView, isLast bool) string {
	done := t.done()
	width := v.contentWidth()

	heading := v.styles.Heading.Render(CitationsTitle)
	if !done {
		heading = v.styles.Faint.Render(CitationsTitle)
	}

	cards := []string{heading}
	for i, item := range t.turn.Evidence {
		var lines []string
		title := item.Title
		if item.Type != "" {
			title = fmt.Sprintf("%s  %s", item.Title, v.styles.Muted.Render(item.Type))
		}
		lines = append(lines, title)

		if t.expanded[i] {
			if item.WhyItMatters != "" {
				lines = append(lines, v.styles.Normal.Render(item.WhyItMatters))
			}
			if item.URL != "" {
				lines = append(lines, v.styles.Link.Render(item.URL))
			}
		}

		style := v.styles.Card
		switch {
		case !done:
			style = style.Faint(true)
		case isLast && i == v.citation:
			style = v.styles.SelectedCard
		}
		cards = append(cards, style.Width(width-2).Render(strings.Join(lines, "\n")))
	}
	return strings.Join(cards, "\n")
}

func (v *View) renderSuggestions() string {
	title := RelatedTitle
	if len(v.turns) == 0 {
		title = ExploreTitle
	}

	topics := v.conv.RemainingTopics()
	if len(topics) == 0 {
		return ""
	}

	cols := v.columns()
	cellWidth := v.contentWidth()/cols - 2

	var rows []string
	for start := 0; start < len(topics); start += cols {
		var cells []string
		for i := start; i < start+cols && i < len(topics); i++ {
			style := v.styles.Card
			if i == v.cursor {
				style = v.styles.SelectedCard
			}
			cells = append(cells, style.Width(cellWidth).Render(topics[i].Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return v.styles.Heading.Render(title) + "\n" + strings.Join(rows, "\n")
}

func (v *View) contentWidth() int {
	return max(v.width-2, 20)
}

// Turns returns the turns currently shown.
func (v *View) Turns() []domain.Turn {
	out := make([]domain.Turn, 0, len(v.turns))
	for _, t := range v.turns {
		out = append(out, t.turn)
	}
	return out
}

// Cursor returns the highlighted suggestion index.
func (v *View) Cursor() int {
	return v.cursor
}

// Citation returns the highlighted citation index, or -1.
func (v *View) Citation() int {
	return v.citation
}

// Expanded reports whether citation i of the last turn is expanded.
func (v *View) Expanded(i int) bool {
	last := v.last()
	return last != nil && last.expanded[i]
}

// Content returns the full rendered conversation without scrolling.
func (v *View) Content() string {
	if v.conv == nil {
		return ""
	}
	return v.renderContent()
}

// StatusBar returns the status bar component.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}
