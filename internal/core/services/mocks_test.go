package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/normalisers/markdown"
)

// mockFetcher serves canned bytes by location.
type mockFetcher struct {
	mu      sync.Mutex
	content map[string][]byte
	errs    map[string]error
	calls   []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		content: make(map[string][]byte),
		errs:    make(map[string]error),
	}
}

func (m *mockFetcher) with(location, body string) *mockFetcher {
	m.content[location] = []byte(body)
	return m
}

func (m *mockFetcher) failing(location string, err error) *mockFetcher {
	m.errs[location] = err
	return m
}

func (m *mockFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, location)
	err, failing := m.errs[location]
	body, ok := m.content[location]
	m.mu.Unlock()

	if failing {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSourceNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return body, nil
}

func (m *mockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]string(nil), m.calls...)
	sort.Strings(out)
	return out
}

var _ driven.Fetcher = (*mockFetcher)(nil)

// mockNavigator stores query parameters in a map.
type mockNavigator struct {
	params map[string]string
	pushes []string
	err    error
}

func newMockNavigator(q string) *mockNavigator {
	n := &mockNavigator{params: make(map[string]string)}
	if q != "" {
		n.params[driven.QueryParam] = q
	}
	return n
}

func (n *mockNavigator) QueryParam(name string) string {
	return n.params[name]
}

func (n *mockNavigator) SetQueryParam(name, value string) error {
	if n.err != nil {
		return n.err
	}
	n.params[name] = value
	n.pushes = append(n.pushes, value)
	return nil
}

var _ driven.Navigator = (*mockNavigator)(nil)

// fakeScheduler records requested delays and fires timers on demand.
type fakeScheduler struct {
	mu      sync.Mutex
	delays  []time.Duration
	pending []*fakeTimer
}

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) driven.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{f: f}
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, t)
	return t
}

// Fire runs the oldest live timer. It reports false when none is pending.
func (s *fakeScheduler) Fire() bool {
	s.mu.Lock()
	var next *fakeTimer
	for len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		if !t.stopped {
			next = t
			break
		}
	}
	s.mu.Unlock()

	if next == nil {
		return false
	}
	next.fired = true
	next.f()
	return true
}

// FireAll runs timers until none is pending and returns how many ran.
func (s *fakeScheduler) FireAll() int {
	n := 0
	for s.Fire() {
		n++
	}
	return n
}

func (s *fakeScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

var _ driven.Scheduler = (*fakeScheduler)(nil)

const testMarkdown = `# Portfolio

## Tell me about yourself
I build things.

Mostly software.

## What are your skills?
Go, TypeScript.
`

const testKeywords = `{
  "Tell me about yourself": "about",
  "What are your skills?": "skills",
  "What's next?": "next"
}`

const testEvidence = `{
  "about": [
    {"title": "Blog", "url": "https://example.com/blog", "type": "article", "why_it_matters": "Writing sample"}
  ],
  "skills": [
    {"title": "Repo", "link": "https://github.com/example/repo", "type": "code", "why_it_matters": "Go work"}
  ]
}`

func testSnapshot() *domain.Snapshot {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "Tell me about yourself", Key: "about"},
		{Label: "What are your skills?", Key: "skills"},
		{Label: "What's next?", Key: "next"},
	})
	evidence := domain.EvidenceMap{
		"about": {{Title: "Blog", URL: "https://example.com/blog", Type: "article", WhyItMatters: "Writing sample"}},
	}
	return domain.NewSnapshot(keywords, evidence, markdown.New().Parse(testMarkdown))
}
