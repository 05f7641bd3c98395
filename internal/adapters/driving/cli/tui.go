package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/adapters/driving/tui"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// tuiTopic is the deep-link key to start from.
var tuiTopic string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive conversation.

Controls:
  ←↑↓→/hjkl - Choose a topic
  Enter     - Ask
  Space     - Reveal the full answer
  Tab, e    - Move through and expand citations
  PgUp/PgDn - Scroll
  q         - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiTopic, "q", "", "start the conversation at this topic key")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := requireServices()
	if err != nil {
		return err
	}
	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	history := navigation.NewHistory(nil)
	if tuiTopic != "" {
		history = navigation.WithTopic(tuiTopic)
	}

	ports := tui.NewPorts(svc.Loader, svc.Revealer, func(s *domain.Snapshot) driving.ConversationService {
		return svc.Conversations(s, history)
	})
	ports.Link = history.Link

	app, err := tui.NewApp(ports, tui.Options{
		Profile: settings.Profile,
		Reveal:  settings.Reveal,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// The TUI owns the terminal; logs would corrupt the screen.
	prev := logger.SetOutput(io.Discard)
	err = app.Run()
	logger.SetOutput(prev)
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if key := history.QueryParam("q"); key != "" {
		cmd.Printf("Resume with: folio tui --q %s  (%s)\n", key, history.Link())
	}
	return nil
}
