package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/logger"
)

// watchDebounce coalesces bursts of writes from editors.
const watchDebounce = 200 * time.Millisecond

var checkWatch bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the portfolio content",
	Long: `Load the configured content and report problems:

  - keyword keys used by more than one label
  - topics without a matching section
  - sections that no topic points at

Exits non-zero when content cannot be loaded or problems are found. With
--watch, local sources are re-checked whenever they change.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check when local sources change")
	rootCmd.AddCommand(checkCmd)
}

// errProblemsFound is returned when content loads but is inconsistent.
var errProblemsFound = errors.New("content has problems")

// Report lists the problems found in a snapshot.
type Report struct {
	Topics             int
	Sections           int
	DuplicateKeys      []domain.Topic
	MissingSections    []domain.Topic
	UnreferencedTitles []string
}

// Problems returns the number of problems found.
func (r Report) Problems() int {
	return len(r.DuplicateKeys) + len(r.MissingSections) + len(r.UnreferencedTitles)
}

// checkSnapshot inspects a snapshot for inconsistencies.
func checkSnapshot(snapshot *domain.Snapshot) Report {
	topics := snapshot.Topics()
	sections := snapshot.Sections()

	report := Report{
		Topics:        len(topics),
		Sections:      len(sections),
		DuplicateKeys: snapshot.Keywords().Duplicates(),
	}

	for _, t := range topics {
		if _, ok := snapshot.SectionFor(t.Label); !ok {
			report.MissingSections = append(report.MissingSections, t)
		}
	}

	for _, s := range sections {
		referenced := false
		for _, t := range topics {
			if s.Matches(t.Label) {
				referenced = true
				break
			}
		}
		if !referenced {
			report.UnreferencedTitles = append(report.UnreferencedTitles, s.Title)
		}
	}

	return report
}

func printReport(out io.Writer, r Report) {
	fmt.Fprintf(out, "Topics: %d, sections: %d\n", r.Topics, r.Sections)

	for _, d := range r.DuplicateKeys {
		fmt.Fprintf(out, "  duplicate key %q (label %q)\n", d.Key, d.Label)
	}
	for _, t := range r.MissingSections {
		fmt.Fprintf(out, "  no section titled %q (key %q)\n", t.Label, t.Key)
	}
	for _, title := range r.UnreferencedTitles {
		fmt.Fprintf(out, "  section %q is not a topic\n", title)
	}

	if r.Problems() == 0 {
		fmt.Fprintln(out, "OK")
		return
	}
	fmt.Fprintf(out, "%d problem(s) found\n", r.Problems())
}

func runCheck(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if checkWatch {
		return watchCheck(cmd.Context(), cmd.OutOrStdout(), svc)
	}
	return checkOnce(cmd.Context(), cmd.OutOrStdout(), svc)
}

func checkOnce(ctx context.Context, out io.Writer, svc *Services) error {
	snapshot, err := svc.Loader.Load(ctx)
	if err != nil {
		var dle *domain.DataLoadError
		if errors.As(err, &dle) {
			logger.Debug("Load failure cause: %v", dle.Cause)
			fmt.Fprintf(out, "Load failed: %v\n", dle.Cause)
		}
		return fmt.Errorf("failed to load content: %w", err)
	}

	report := checkSnapshot(snapshot)
	printReport(out, report)
	if report.Problems() > 0 {
		return errProblemsFound
	}
	return nil
}

// watchCheck checks once, then again after every change to a local source.
// Parent directories are watched so editors that replace files are seen.
func watchCheck(ctx context.Context, out io.Writer, svc *Services) error {
	if len(svc.LocalPaths) == 0 {
		return errors.New("nothing to watch: no local sources configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	files := make(map[string]bool, len(svc.LocalPaths))
	dirs := make(map[string]bool)
	for _, p := range svc.LocalPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	recheck := func() {
		if err := checkOnce(ctx, out, svc); err != nil && !errors.Is(err, errProblemsFound) {
			fmt.Fprintln(out, err)
		}
		fmt.Fprintln(out, "Watching for changes...")
	}
	recheck()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("Change detected: %s", event)
				debounce = time.After(watchDebounce)
			}

		case <-debounce:
			debounce = nil
			recheck()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
