package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// SourceKind identifies where a content resource is fetched from.
type SourceKind string

// Available source kinds.
const (
	// SourceKindFile is a local path or file:// URI.
	SourceKindFile SourceKind = "file"

	// SourceKindWeb is an http:// or https:// URL.
	SourceKindWeb SourceKind = "web"

	// SourceKindGitHub is a github://owner/repo/path URI.
	SourceKindGitHub SourceKind = "github"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindFile, SourceKindWeb, SourceKindGitHub:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindFile:
		return "Local file"
	case SourceKindWeb:
		return "HTTP(S) URL"
	case SourceKindGitHub:
		return "GitHub repository file"
	default:
		return unknownDescription
	}
}

// KindOf classifies a source location by its scheme.
// Locations without a scheme are local paths.
func KindOf(location string) (SourceKind, error) {
	if !strings.Contains(location, "://") {
		return SourceKindFile, nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, location)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return SourceKindFile, nil
	case "http", "https":
		return SourceKindWeb, nil
	case "github":
		return SourceKindGitHub, nil
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}
}

// SourceSettings locates the three content resources.
type SourceSettings struct {
	// Markdown is the Q&A document.
	Markdown string

	// Keywords is the label to key JSON object.
	Keywords string

	// Evidence is the key to citations JSON object.
	Evidence string
}

// Locations returns the three locations in load order.
func (s SourceSettings) Locations() []string {
	return []string{s.Markdown, s.Keywords, s.Evidence}
}

// GitHubSettings holds GitHub access configuration.
type GitHubSettings struct {
	// Token is an optional personal access token.
	Token string
}

// RevealSettings holds typewriter pacing configuration.
type RevealSettings struct {
	// AnswerDelay is the base delay for answer bodies.
	AnswerDelay time.Duration

	// ParagraphPause is the pause at blank lines.
	ParagraphPause time.Duration

	// PunctuationPause is the pause after sentence punctuation.
	PunctuationPause time.Duration
}

// Pacing returns the answer pacing.
func (r RevealSettings) Pacing() Pacing {
	return Pacing{
		BaseDelay:        r.AnswerDelay,
		ParagraphPause:   r.ParagraphPause,
		PunctuationPause: r.PunctuationPause,
	}
}

// ProfileSettings holds the greeting shown above the conversation.
type ProfileSettings struct {
	Greeting string
	Tagline  string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Sources SourceSettings
	GitHub  GitHubSettings
	Reveal  RevealSettings
	Profile ProfileSettings
}

// Validate checks that every source location is set and has a known scheme,
// and that pacing is not negative.
func (s AppSettings) Validate() error {
	names := []string{"markdown", "keywords", "evidence"}
	for i, loc := range s.Sources.Locations() {
		if strings.TrimSpace(loc) == "" {
			return fmt.Errorf("%w: %s source is empty", ErrInvalidInput, names[i])
		}
		if _, err := KindOf(loc); err != nil {
			return fmt.Errorf("%s source: %w", names[i], err)
		}
	}
	if s.Reveal.AnswerDelay < 0 || s.Reveal.ParagraphPause < 0 || s.Reveal.PunctuationPause < 0 {
		return fmt.Errorf("%w: reveal delays must not be negative", ErrInvalidInput)
	}
	return nil
}

// DefaultAppSettings returns settings with sensible defaults.
// Content is read from a data directory next to the working directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Sources: SourceSettings{
			Markdown: "data/qa.md",
			Keywords: "data/keywords.json",
			Evidence: "data/evidence.json",
		},
		Reveal: RevealSettings{
			AnswerDelay:      DefaultAnswerDelay,
			ParagraphPause:   DefaultParagraphPause,
			PunctuationPause: DefaultPunctuationPause,
		},
		Profile: ProfileSettings{
			Greeting: "Hi, I’m Yiyi.",
			Tagline:  "Ask me anything.",
		},
	}
}

// AllSourceKinds returns all supported source kinds.
func AllSourceKinds() []SourceKind {
	return []SourceKind{
		SourceKindFile,
		SourceKindWeb,
		SourceKindGitHub,
	}
}
