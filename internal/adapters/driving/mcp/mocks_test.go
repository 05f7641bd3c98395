package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/core/services"
)

// mockLoader is a mock implementation of driving.SnapshotLoader.
type mockLoader struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
	err      error
	calls    int
}

func (m *mockLoader) Load(_ context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

func (m *mockLoader) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func testSnapshot() *domain.Snapshot {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "Tell me about yourself", Key: "about"},
		{Label: "What are your skills?", Key: "skills"},
		{Label: "What comes next?", Key: "next"},
	})
	evidence := domain.EvidenceMap{
		"about": {{
			Title:        "Portfolio repo",
			URL:          "https://github.com/example/portfolio",
			Type:         "code",
			WhyItMatters: "Shows the work end to end.",
		}},
	}
	sections := []domain.Section{
		{Title: "Tell me about yourself", Body: "I build things."},
		{Title: "What are your skills?", Body: "Go."},
	}
	return domain.NewSnapshot(keywords, evidence, sections)
}

func newTestPorts(loader *mockLoader) *Ports {
	return &Ports{
		Loader: loader,
		Conversations: func(s *domain.Snapshot) driving.ConversationService {
			return services.NewConversation(s, navigation.NewHistory(nil))
		},
	}
}
