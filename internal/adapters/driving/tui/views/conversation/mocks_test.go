package conversation

import (
	"sync"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/core/services"
)

// fakeRevealer hands out reveals that only advance when told to.
// With instant set, every reveal completes inside Start.
type fakeRevealer struct {
	instant bool
	started []*fakeReveal
}

func (f *fakeRevealer) Start(text string, _ domain.Pacing, hooks driving.RevealHooks) driving.Reveal {
	r := &fakeReveal{full: text, hooks: hooks, done: make(chan struct{})}
	f.started = append(f.started, r)
	if f.instant || text == "" {
		r.Skip()
	}
	return r
}

type fakeReveal struct {
	mu        sync.Mutex
	full      string
	shown     int
	state     domain.RevealState
	skipped   bool
	cancelled bool
	hooks     driving.RevealHooks
	done      chan struct{}
}

// step reveals n more runes.
func (r *fakeReveal) step(n int) {
	r.mu.Lock()
	runes := []rune(r.full)
	r.shown = min(r.shown+n, len(runes))
	r.state = domain.RevealRevealing
	finished := r.shown == len(runes)
	r.mu.Unlock()
	if finished {
		r.complete()
	}
}

func (r *fakeReveal) complete() {
	r.mu.Lock()
	if r.state == domain.RevealRevealed || r.cancelled {
		r.mu.Unlock()
		return
	}
	r.shown = len([]rune(r.full))
	r.state = domain.RevealRevealed
	close(r.done)
	r.mu.Unlock()
	if r.hooks.OnComplete != nil {
		r.hooks.OnComplete()
	}
}

func (r *fakeReveal) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string([]rune(r.full)[:r.shown])
}

func (r *fakeReveal) State() domain.RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *fakeReveal) Skip() {
	r.mu.Lock()
	r.skipped = r.state != domain.RevealRevealed
	r.mu.Unlock()
	r.complete()
}

func (r *fakeReveal) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = true
}

func (r *fakeReveal) Done() <-chan struct{} {
	return r.done
}

func (r *fakeReveal) Skipped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

func testSnapshot() *domain.Snapshot {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "Tell me about yourself", Key: "about"},
		{Label: "What are your skills?", Key: "skills"},
		{Label: "What comes next?", Key: "next"},
	})
	evidence := domain.EvidenceMap{
		"about": {
			{
				Title:        "Portfolio repo",
				URL:          "https://github.com/example/portfolio",
				Type:         "code",
				WhyItMatters: "Shows the work end to end.",
			},
			{Title: "Talk", URL: "https://example.com/talk", Type: "video"},
		},
	}
	sections := []domain.Section{
		{Title: "Tell me about yourself", Body: "I build things."},
		{Title: "What are your skills?", Body: "Go."},
	}
	return domain.NewSnapshot(keywords, evidence, sections)
}

func newTestConversation(history *navigation.History) *services.Conversation {
	if history == nil {
		history = navigation.NewHistory(nil)
	}
	return services.NewConversation(testSnapshot(), history)
}

func testOptions() Options {
	return Options{
		Pacing:         domain.DefaultPacing(),
		GreetingPacing: domain.DefaultPacing(),
		Profile: domain.ProfileSettings{
			Greeting: "Hi there.",
			Tagline:  "Ask me anything.",
		},
	}
}
