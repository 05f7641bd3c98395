package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio/internal/core/domain"
)

func newTestSettingsService(store *memory.ConfigStore, env map[string]string) *SettingsService {
	service := NewSettingsService(store)
	service.getenv = func(key string) string { return env[key] }
	return service
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := newTestSettingsService(memory.NewConfigStore(), nil)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.Equal(t, 20*time.Millisecond, settings.Reveal.AnswerDelay)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"sources.markdown":            "https://example.com/qa.md",
		"reveal.answer_delay_ms":      int64(5),
		"reveal.paragraph_pause_ms":   0,
		"reveal.punctuation_pause_ms": 75,
		"profile.greeting":            "Hello there.",
	})
	service := newTestSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/qa.md", settings.Sources.Markdown)
	assert.Equal(t, domain.DefaultAppSettings().Sources.Keywords, settings.Sources.Keywords)
	assert.Equal(t, 5*time.Millisecond, settings.Reveal.AnswerDelay)
	assert.Equal(t, time.Duration(0), settings.Reveal.ParagraphPause)
	assert.Equal(t, 75*time.Millisecond, settings.Reveal.PunctuationPause)
	assert.Equal(t, "Hello there.", settings.Profile.Greeting)
}

func TestSettingsService_Get_NegativeDelayFallsBack(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{"reveal.answer_delay_ms": -4})
	service := newTestSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAnswerDelay, settings.Reveal.AnswerDelay)
}

func TestSettingsService_Get_GitHubToken(t *testing.T) {
	t.Run("environment fallback", func(t *testing.T) {
		service := newTestSettingsService(memory.NewConfigStore(), map[string]string{"GITHUB_TOKEN": "env"})

		settings, err := service.Get()

		require.NoError(t, err)
		assert.Equal(t, "env", settings.GitHub.Token)
	})

	t.Run("config wins", func(t *testing.T) {
		store := memory.NewConfigStore(map[string]any{"github.token": "cfg"})
		service := newTestSettingsService(store, map[string]string{"GITHUB_TOKEN": "env"})

		settings, err := service.Get()

		require.NoError(t, err)
		assert.Equal(t, "cfg", settings.GitHub.Token)
	})
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := newTestSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	settings.Sources.Evidence = "github://me/site/evidence.json"
	settings.Reveal.PunctuationPause = 150 * time.Millisecond

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "github://me/site/evidence.json", store.GetString("sources.evidence"))
	assert.Equal(t, 150, store.GetInt("reveal.punctuation_pause_ms"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_DoesNotPersistEnvToken(t *testing.T) {
	store := memory.NewConfigStore()
	service := newTestSettingsService(store, map[string]string{"GITHUB_TOKEN": "env"})

	settings, err := service.Get()
	require.NoError(t, err)
	require.NoError(t, service.Save(settings))

	_, exists := store.Get("github.token")
	assert.False(t, exists)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := newTestSettingsService(store, nil)

	settings := domain.DefaultAppSettings()
	settings.Sources.Markdown = "ftp://example.com/qa.md"

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
	assert.Empty(t, store.Keys())
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"sources.markdown", "content/qa.md", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "content/qa.md", s.Sources.Markdown)
		}},
		{"sources.keywords", "https://example.com/k.json", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "https://example.com/k.json", s.Sources.Keywords)
		}},
		{"sources.evidence", "file:///tmp/e.json", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "file:///tmp/e.json", s.Sources.Evidence)
		}},
		{"github.token", "tok", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "tok", s.GitHub.Token)
		}},
		{"reveal.answer_delay_ms", " 40 ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 40*time.Millisecond, s.Reveal.AnswerDelay)
		}},
		{"reveal.paragraph_pause_ms", "0", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, time.Duration(0), s.Reveal.ParagraphPause)
		}},
		{"reveal.punctuation_pause_ms", "300", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 300*time.Millisecond, s.Reveal.PunctuationPause)
		}},
		{"profile.greeting", "Hey.", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "Hey.", s.Profile.Greeting)
		}},
		{"profile.tagline", "Ask away.", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "Ask away.", s.Profile.Tagline)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := newTestSettingsService(memory.NewConfigStore(), nil)

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"non numeric delay", "reveal.answer_delay_ms", "fast"},
		{"negative delay", "reveal.paragraph_pause_ms", "-1"},
		{"empty source", "sources.markdown", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestSettingsService(memory.NewConfigStore(), nil)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 9)
	assert.Equal(t, "sources.markdown", keys[0])
	assert.Contains(t, keys, "github.token")
	assert.Contains(t, keys, "reveal.answer_delay_ms")
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
