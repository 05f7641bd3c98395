package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Loader implements the interface.
var _ driving.SnapshotLoader = (*Loader)(nil)

// ErrMissingFetcher is returned when a loader is built without a fetcher.
var ErrMissingFetcher = errors.New("loader: fetcher is required")

// Loader assembles the startup snapshot.
type Loader struct {
	fetcher driven.Fetcher
	parser  driven.SectionParser
	sources domain.SourceSettings
}

// NewLoader creates a loader reading the given sources.
func NewLoader(fetcher driven.Fetcher, parser driven.SectionParser, sources domain.SourceSettings) (*Loader, error) {
	if fetcher == nil {
		return nil, ErrMissingFetcher
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: section parser is required", domain.ErrInvalidInput)
	}
	return &Loader{
		fetcher: fetcher,
		parser:  parser,
		sources: sources,
	}, nil
}

// Sources returns the locations this loader reads.
func (l *Loader) Sources() domain.SourceSettings {
	return l.sources
}

// Load fetches markdown, keywords and evidence concurrently.
// The first failed fetch cancels the others and the whole load fails with a
// *domain.DataLoadError. Decode failures are returned as-is.
func (l *Loader) Load(ctx context.Context) (*domain.Snapshot, error) {
	logger.Section("Load")

	var markdown, keywordsJSON, evidenceJSON []byte

	g, gctx := errgroup.WithContext(ctx)
	g.Go(l.fetchInto(gctx, l.sources.Markdown, &markdown))
	g.Go(l.fetchInto(gctx, l.sources.Keywords, &keywordsJSON))
	g.Go(l.fetchInto(gctx, l.sources.Evidence, &evidenceJSON))

	if err := g.Wait(); err != nil {
		logger.Warn("Data load failed: %v", err)
		return nil, &domain.DataLoadError{Cause: err}
	}

	var keywords domain.Keywords
	if err := json.Unmarshal(keywordsJSON, &keywords); err != nil {
		return nil, fmt.Errorf("decode keywords: %w", err)
	}

	var evidence domain.EvidenceMap
	if err := json.Unmarshal(evidenceJSON, &evidence); err != nil {
		return nil, fmt.Errorf("decode evidence: %w", err)
	}

	for _, dup := range keywords.Duplicates() {
		logger.Warn("Keyword %q reuses key %q; reverse lookup keeps the earlier label", dup.Label, dup.Key)
	}

	sections := l.parser.Parse(string(markdown))
	logger.Info("Loaded %d topics, %d sections, %d evidence keys",
		keywords.Len(), len(sections), len(evidence))

	return domain.NewSnapshot(&keywords, evidence, sections), nil
}

// fetchInto returns an errgroup task storing the fetched bytes in dst.
func (l *Loader) fetchInto(ctx context.Context, location string, dst *[]byte) func() error {
	return func() error {
		logger.Debug("Fetching %s", location)
		data, err := l.fetcher.Fetch(ctx, location)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", location, err)
		}
		*dst = data
		return nil
	}
}
