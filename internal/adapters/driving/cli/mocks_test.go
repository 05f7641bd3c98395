package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/folio/internal/adapters/driven/clock"
	"github.com/custodia-labs/folio/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/core/services"
)

// mockLoader returns a fixed snapshot or error.
type mockLoader struct {
	snapshot *domain.Snapshot
	err      error
}

func (m *mockLoader) Load(_ context.Context) (*domain.Snapshot, error) {
	return m.snapshot, m.err
}

func testSnapshot() *domain.Snapshot {
	keywords := domain.NewKeywords([]domain.Topic{
		{Label: "Tell me about yourself", Key: "about"},
		{Label: "What are your skills?", Key: "skills"},
		{Label: "What comes next?", Key: "next"},
	})
	evidence := domain.EvidenceMap{
		"about": {{
			Title:        "Portfolio repo",
			URL:          "https://github.com/example/portfolio",
			Type:         "code",
			WhyItMatters: "Shows the work end to end.",
		}},
	}
	sections := []domain.Section{
		{Title: "Tell me about yourself", Body: "I build things.\n\nMostly software."},
		{Title: "What are your skills?", Body: "Go."},
		{Title: "Hobbies", Body: "Climbing."},
	}
	return domain.NewSnapshot(keywords, evidence, sections)
}

// setupTestServices installs services backed by memory and a fixed
// snapshot, and returns a cleanup that restores flags and services.
func setupTestServices() func() {
	return setupTestServicesWith(&mockLoader{snapshot: testSnapshot()})
}

func setupTestServicesWith(loader driving.SnapshotLoader) func() {
	prev := appServices
	appServices = &Services{
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Loader:   loader,
		Revealer: services.NewTypewriter(clock.New()),
		Conversations: func(s *domain.Snapshot, nav driven.Navigator) driving.ConversationService {
			return services.NewConversation(s, nav)
		},
	}
	return func() {
		appServices = prev
		askJSON = false
		askNoAnimate = false
		topicsJSON = false
		checkWatch = false
		tuiTopic = ""
		rootCmd.SetArgs(nil)
	}
}

// execute runs the root command with args and returns combined output.
// Flags keep their values between runs, so they are reset first.
func execute(args ...string) (string, error) {
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// including cobra's lazily added help flag.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
