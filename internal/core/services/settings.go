package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySourceMarkdown   = "sources.markdown"
	keySourceKeywords   = "sources.keywords"
	keySourceEvidence   = "sources.evidence"
	keyGitHubToken      = "github.token"
	keyAnswerDelay      = "reveal.answer_delay_ms"
	keyParagraphPause   = "reveal.paragraph_pause_ms"
	keyPunctuationPause = "reveal.punctuation_pause_ms"
	keyGreeting         = "profile.greeting"
	keyTagline          = "profile.tagline"
)

// envGitHubToken is consulted when no token is configured.
const envGitHubToken = "GITHUB_TOKEN"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Sources: domain.SourceSettings{
			Markdown: s.getString(keySourceMarkdown, defaults.Sources.Markdown),
			Keywords: s.getString(keySourceKeywords, defaults.Sources.Keywords),
			Evidence: s.getString(keySourceEvidence, defaults.Sources.Evidence),
		},
		GitHub: domain.GitHubSettings{
			Token: s.getString(keyGitHubToken, s.getenv(envGitHubToken)),
		},
		Reveal: domain.RevealSettings{
			AnswerDelay:      s.getMillis(keyAnswerDelay, defaults.Reveal.AnswerDelay),
			ParagraphPause:   s.getMillis(keyParagraphPause, defaults.Reveal.ParagraphPause),
			PunctuationPause: s.getMillis(keyPunctuationPause, defaults.Reveal.PunctuationPause),
		},
		Profile: domain.ProfileSettings{
			Greeting: s.getString(keyGreeting, defaults.Profile.Greeting),
			Tagline:  s.getString(keyTagline, defaults.Profile.Tagline),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keySourceMarkdown, settings.Sources.Markdown},
		{keySourceKeywords, settings.Sources.Keywords},
		{keySourceEvidence, settings.Sources.Evidence},
		{keyAnswerDelay, settings.Reveal.AnswerDelay.Milliseconds()},
		{keyParagraphPause, settings.Reveal.ParagraphPause.Milliseconds()},
		{keyPunctuationPause, settings.Reveal.PunctuationPause.Milliseconds()},
		{keyGreeting, settings.Profile.Greeting},
		{keyTagline, settings.Profile.Tagline},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Tokens from the environment are never written back.
	if settings.GitHub.Token != "" && settings.GitHub.Token != s.getenv(envGitHubToken) {
		if err := s.configStore.Set(keyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save %s: %w", keyGitHubToken, err)
		}
	}

	return nil
}

// Set updates a single setting by config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keySourceMarkdown:
		settings.Sources.Markdown = value
	case keySourceKeywords:
		settings.Sources.Keywords = value
	case keySourceEvidence:
		settings.Sources.Evidence = value
	case keyGitHubToken:
		return s.configStore.Set(keyGitHubToken, value)
	case keyAnswerDelay, keyParagraphPause, keyPunctuationPause:
		d, err := parseMillis(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case keyAnswerDelay:
			settings.Reveal.AnswerDelay = d
		case keyParagraphPause:
			settings.Reveal.ParagraphPause = d
		default:
			settings.Reveal.PunctuationPause = d
		}
	case keyGreeting:
		settings.Profile.Greeting = value
	case keyTagline:
		settings.Profile.Tagline = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keySourceMarkdown,
		keySourceKeywords,
		keySourceEvidence,
		keyGitHubToken,
		keyAnswerDelay,
		keyParagraphPause,
		keyPunctuationPause,
		keyGreeting,
		keyTagline,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	ms := s.configStore.GetInt(key)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func parseMillis(value string) (time.Duration, error) {
	ms, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative number of milliseconds", domain.ErrInvalidInput, value)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
