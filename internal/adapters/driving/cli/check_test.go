package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestCheckSnapshot(t *testing.T) {
	report := checkSnapshot(testSnapshot())

	assert.Equal(t, 3, report.Topics)
	assert.Equal(t, 3, report.Sections)
	assert.Empty(t, report.DuplicateKeys)
	require.Len(t, report.MissingSections, 1)
	assert.Equal(t, "next", report.MissingSections[0].Key)
	assert.Equal(t, []string{"Hobbies"}, report.UnreferencedTitles)
	assert.Equal(t, 2, report.Problems())
}

func TestCheckSnapshot_Duplicates(t *testing.T) {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "One", Key: "same"},
		{Label: "Two", Key: "same"},
	})
	sections := []domain.Section{{Title: "one"}, {Title: "TWO"}}

	report := checkSnapshot(domain.NewSnapshot(keywords, nil, sections))

	require.Len(t, report.DuplicateKeys, 1)
	assert.Equal(t, "Two", report.DuplicateKeys[0].Label)
	assert.Empty(t, report.MissingSections)
	assert.Empty(t, report.UnreferencedTitles)
}

func TestCheckCmd_ReportsProblems(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("check")

	assert.ErrorIs(t, err, errProblemsFound)
	assert.Contains(t, out, `no section titled "What comes next?"`)
	assert.Contains(t, out, `section "Hobbies" is not a topic`)
	assert.Contains(t, out, "2 problem(s) found")
}

func TestCheckCmd_Clean(t *testing.T) {
	keywords := domain.NewKeywords([]domain.Topic{{Label: "About", Key: "about"}})
	snapshot := domain.NewSnapshot(keywords, nil, []domain.Section{{Title: "About", Body: "Hi."}})
	cleanup := setupTestServicesWith(&mockLoader{snapshot: snapshot})
	defer cleanup()

	out, err := execute("check")

	require.NoError(t, err)
	assert.Contains(t, out, "Topics: 1, sections: 1")
	assert.Contains(t, out, "OK")
}

func TestCheckCmd_LoadFailure(t *testing.T) {
	cleanup := setupTestServicesWith(&mockLoader{
		err: &domain.DataLoadError{Cause: errors.New("no such host")},
	})
	defer cleanup()

	out, err := execute("check")

	assert.ErrorIs(t, err, domain.ErrDataLoad)
	assert.Contains(t, out, "Load failed: no such host")
}

func TestCheckCmd_WatchWithoutLocalSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("check", "--watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to watch")
}

// syncBuffer is a bytes.Buffer safe for the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchCheck_RechecksOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.md")
	require.NoError(t, os.WriteFile(path, []byte("## About\nHi."), 0o600))

	cleanup := setupTestServices()
	defer cleanup()
	svc := *appServices
	svc.LocalPaths = []string{path}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() { done <- watchCheck(ctx, out, &svc) }()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "Watching for changes...") == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("## About\nHello."), 0o600))

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "Watching for changes...") >= 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
