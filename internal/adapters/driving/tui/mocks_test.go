package tui

import (
	"context"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/core/services"
)

// mockLoader returns a fixed snapshot or error.
type mockLoader struct {
	snapshot *domain.Snapshot
	err      error
	calls    int
}

func (m *mockLoader) Load(ctx context.Context) (*domain.Snapshot, error) {
	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.snapshot, m.err
}

// instantRevealer completes every reveal inside Start.
type instantRevealer struct {
	started []string
}

func (r *instantRevealer) Start(text string, _ domain.Pacing, hooks driving.RevealHooks) driving.Reveal {
	r.started = append(r.started, text)
	done := make(chan struct{})
	close(done)
	if hooks.OnComplete != nil {
		hooks.OnComplete()
	}
	return &instantReveal{text: text, done: done}
}

type instantReveal struct {
	text string
	done chan struct{}
}

func (r *instantReveal) Text() string              { return r.text }
func (r *instantReveal) State() domain.RevealState { return domain.RevealRevealed }
func (r *instantReveal) Skip()                     {}
func (r *instantReveal) Cancel()                   {}
func (r *instantReveal) Done() <-chan struct{}     { return r.done }
func (r *instantReveal) Skipped() bool             { return false }

func testSnapshot() *domain.Snapshot {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "Tell me about yourself", Key: "about"},
		{Label: "What are your skills?", Key: "skills"},
	})
	sections := []domain.Section{
		{Title: "Tell me about yourself", Body: "I build things."},
		{Title: "What are your skills?", Body: "Go."},
	}
	return domain.NewSnapshot(keywords, nil, sections)
}

func newTestPorts(loader *mockLoader, history *navigation.History) *Ports {
	if history == nil {
		history = navigation.NewHistory(nil)
	}
	ports := NewPorts(loader, &instantRevealer{}, func(s *domain.Snapshot) driving.ConversationService {
		return services.NewConversation(s, history)
	})
	ports.Link = history.Link
	return ports
}

func testAppOptions() Options {
	return Options{
		Profile: domain.ProfileSettings{Greeting: "Hello.", Tagline: "Ask away."},
		Reveal:  domain.DefaultAppSettings().Reveal,
	}
}
