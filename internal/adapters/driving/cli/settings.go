package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure content sources, reveal pacing and the greeting.

Sources may be local paths, file:// URIs, http(s):// URLs or
github://owner/repo/path[?ref=branch] locations.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting by its key. Run "folio settings show" to list keys.

Examples:
  folio settings set sources.markdown https://example.com/qa.md
  folio settings set reveal.answer_delay_ms 10`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	values := settingValues(settings)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	for _, key := range svc.Settings.Keys() {
		cmd.Printf("  %-28s %s\n", key, values[key])
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", svc.Settings.Path())

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	if err := svc.Settings.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	shown := args[1]
	if args[0] == "github.token" {
		shown = maskToken(shown)
	}
	cmd.Printf("%s = %s\n", args[0], shown)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	defaults := svc.Settings.GetDefaults()
	if err := svc.Settings.Save(&defaults); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

// settingValues renders settings by config key for display.
func settingValues(s *domain.AppSettings) map[string]string {
	token := "(not set)"
	if s.GitHub.Token != "" {
		token = maskToken(s.GitHub.Token)
	}

	return map[string]string{
		"sources.markdown":            s.Sources.Markdown,
		"sources.keywords":            s.Sources.Keywords,
		"sources.evidence":            s.Sources.Evidence,
		"github.token":                token,
		"reveal.answer_delay_ms":      strconv.FormatInt(s.Reveal.AnswerDelay.Milliseconds(), 10),
		"reveal.paragraph_pause_ms":   strconv.FormatInt(s.Reveal.ParagraphPause.Milliseconds(), 10),
		"reveal.punctuation_pause_ms": strconv.FormatInt(s.Reveal.PunctuationPause.Milliseconds(), 10),
		"profile.greeting":            s.Profile.Greeting,
		"profile.tagline":             s.Profile.Tagline,
	}
}

// maskToken shows only the ends of a secret.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
