package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// unavailableNotice replaces the answer when a topic has no section.
const unavailableNotice = "Content unavailable for this section."

var (
	askNoAnimate bool
	askJSON      bool
)

var askCmd = &cobra.Command{
	Use:   "ask [key]",
	Short: "Ask one topic and print the answer",
	Long: `Ask a single topic by its key and print the answer with its citations.

The answer is typed out when stdout is a terminal. Use --no-animate to print
it at once. Keys are listed by "folio topics".`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askNoAnimate, "no-animate", false, "print the answer without typing it out")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the turn as JSON")
	rootCmd.AddCommand(askCmd)
}

// askResult is the JSON shape of an answered turn.
type askResult struct {
	domain.Turn
	Available bool           `json:"available"`
	Link      string         `json:"link"`
	Remaining []domain.Topic `json:"remaining"`
	Exhausted bool           `json:"exhausted"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	snapshot, err := svc.Loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	history := navigation.NewHistory(nil)
	conv := svc.Conversations(snapshot, history)
	turn := conv.SelectTopic(strings.TrimSpace(args[0]))

	if askJSON {
		return outputAskJSON(cmd, askResult{
			Turn:      turn,
			Available: turn.Available(),
			Link:      history.Link(),
			Remaining: conv.RemainingTopics(),
			Exhausted: conv.Exhausted(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, turn.Label)
	fmt.Fprintln(out)

	body, err := turn.Body()
	switch {
	case errors.Is(err, domain.ErrContentUnavailable):
		fmt.Fprintln(out, unavailableNotice)
	case animate(out):
		typeOut(cmd, svc.Revealer, body, settings.Reveal.Pacing())
		fmt.Fprintln(out)
	default:
		fmt.Fprintln(out, body)
	}

	printCitations(out, turn.Evidence)

	if remaining := conv.RemainingTopics(); len(remaining) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Related topics:")
		for _, t := range remaining {
			fmt.Fprintf(out, "  %-20s %s\n", t.Key, t.Label)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Link: %s\n", history.Link())
	return nil
}

// animate reports whether answers should be typed out to w.
func animate(w io.Writer) bool {
	if askNoAnimate {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// typeOut prints text as the reveal advances. Interrupting skips to the end.
func typeOut(cmd *cobra.Command, revealer driving.Revealer, text string, pacing domain.Pacing) {
	out := cmd.OutOrStdout()

	var mu sync.Mutex
	printed := 0
	write := func(visible string) {
		mu.Lock()
		defer mu.Unlock()
		runes := []rune(visible)
		if len(runes) > printed {
			fmt.Fprint(out, string(runes[printed:]))
			printed = len(runes)
		}
	}

	reveal := revealer.Start(text, pacing, driving.RevealHooks{OnStep: write})

	select {
	case <-reveal.Done():
	case <-cmd.Context().Done():
		reveal.Skip()
	}
	write(reveal.Text())
}

func printCitations(out io.Writer, evidence []domain.EvidenceItem) {
	if len(evidence) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Verification Citations")
	for _, item := range evidence {
		if item.Type != "" {
			fmt.Fprintf(out, "  - %s (%s)\n", item.Title, item.Type)
		} else {
			fmt.Fprintf(out, "  - %s\n", item.Title)
		}
		if item.WhyItMatters != "" {
			fmt.Fprintf(out, "    %s\n", item.WhyItMatters)
		}
		if item.URL != "" {
			fmt.Fprintf(out, "    %s\n", item.URL)
		}
	}
}

func outputAskJSON(cmd *cobra.Command, result askResult) error {
	if result.Remaining == nil {
		result.Remaining = []domain.Topic{}
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
