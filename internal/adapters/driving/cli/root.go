// Package cli provides the cobra command tree for folio.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// ConversationFactory builds a conversation over snapshot recording deep
// links through navigator.
type ConversationFactory func(snapshot *domain.Snapshot, navigator driven.Navigator) driving.ConversationService

// Services holds the core services the commands drive.
type Services struct {
	// Settings reads and writes configuration.
	Settings driving.SettingsService

	// Loader fetches and parses the configured content.
	Loader driving.SnapshotLoader

	// Revealer types out answers.
	Revealer driving.Revealer

	// Conversations creates the conversation state machine.
	Conversations ConversationFactory

	// LocalPaths are the on-disk files behind local sources, for check --watch.
	LocalPaths []string
}

// ServiceFactory builds services once flags are parsed.
type ServiceFactory func(configDir string) (*Services, error)

var (
	serviceFactory ServiceFactory
	appServices    *Services
)

// errNotConfigured is returned when a command runs without services.
var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Ask about my work, one topic at a time",
	Long: `folio is a conversational portfolio for the terminal.

Pick a topic and the answer is typed out for you, backed by verification
citations. Run without a subcommand to start the interactive UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.folio)")
	rootCmd.Flags().StringVar(&tuiTopic, "q", "", "start the conversation at this topic key")
}

// SetServiceFactory sets how services are built.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices sets the services directly, bypassing the factory.
func SetServices(s *Services) {
	appServices = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if appServices != nil || serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	appServices = s
	return nil
}

// requireServices returns the services or errNotConfigured.
func requireServices() (*Services, error) {
	if appServices == nil {
		return nil, errNotConfigured
	}
	return appServices, nil
}
