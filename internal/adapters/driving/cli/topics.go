package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics that can be asked",
	Args:  cobra.NoArgs,
	RunE:  runTopics,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output topics as JSON")
	rootCmd.AddCommand(topicsCmd)
}

// topicInfo describes one topic and whether it can be answered.
type topicInfo struct {
	Label      string `json:"label"`
	Key        string `json:"key"`
	HasSection bool   `json:"has_section"`
	Citations  int    `json:"citations"`
}

func runTopics(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	snapshot, err := svc.Loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	infos := describeTopics(snapshot)
	out := cmd.OutOrStdout()

	if topicsJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal topics: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(infos) == 0 {
		fmt.Fprintln(out, "No topics found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tSECTION\tCITATIONS")
	for _, info := range infos {
		section := "yes"
		if !info.HasSection {
			section = "missing"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", info.Key, info.Label, section, info.Citations)
	}
	return w.Flush()
}

func describeTopics(snapshot *domain.Snapshot) []topicInfo {
	topics := snapshot.Topics()
	infos := make([]topicInfo, len(topics))
	for i, t := range topics {
		_, ok := snapshot.SectionFor(t.Label)
		infos[i] = topicInfo{
			Label:      t.Label,
			Key:        t.Key,
			HasSection: ok,
			Citations:  len(snapshot.EvidenceFor(t.Key)),
		}
	}
	return infos
}
