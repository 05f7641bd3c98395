package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/connectors/filesystem"
	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestNewServiceFactory_Defaults(t *testing.T) {
	dir := t.TempDir()

	svc, err := newServiceFactory(context.Background())(dir)

	require.NoError(t, err)
	assert.NotNil(t, svc.Settings)
	assert.NotNil(t, svc.Loader)
	assert.NotNil(t, svc.Revealer)
	assert.NotNil(t, svc.Conversations)
	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.Settings.Path())
	assert.Len(t, svc.LocalPaths, 3)
}

func TestNewServiceFactory_LoadsLocalContent(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}
	md := write("qa.md", "# Me\n## About\nHello.")
	kw := write("keywords.json", `{"About":"about"}`)
	ev := write("evidence.json", `{}`)

	svc, err := newServiceFactory(context.Background())(dir)
	require.NoError(t, err)
	require.NoError(t, svc.Settings.Set("sources.markdown", md))
	require.NoError(t, svc.Settings.Set("sources.keywords", kw))
	require.NoError(t, svc.Settings.Set("sources.evidence", ev))

	// Sources are read when services are built.
	svc, err = newServiceFactory(context.Background())(dir)
	require.NoError(t, err)

	snapshot, err := svc.Loader.Load(context.Background())
	require.NoError(t, err)
	section, ok := snapshot.SectionFor("About")
	require.True(t, ok)
	assert.Equal(t, "Hello.", section.Body)
	assert.Equal(t, []string{md, kw, ev}, svc.LocalPaths)
}

func TestLocalPaths_SkipsRemote(t *testing.T) {
	sources := domain.SourceSettings{
		Markdown: "data/qa.md",
		Keywords: "https://example.com/keywords.json",
		Evidence: "github://me/site/evidence.json",
	}

	paths := localPaths(filesystem.New("/srv"), sources)

	assert.Equal(t, []string{filepath.Join("/srv", "data/qa.md")}, paths)
}

func TestNewRouter_RegistersAllKinds(t *testing.T) {
	router, err := newRouter(context.Background(), filesystem.New(""), "")

	require.NoError(t, err)
	assert.ElementsMatch(t, domain.AllSourceKinds(), router.Kinds())
}
