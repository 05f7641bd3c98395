package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/adapters/driven/navigation"
	"github.com/custodia-labs/folio/internal/adapters/driving/mcp"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can browse and
ask portfolio topics.

The server communicates over stdio using JSON-RPC.

Tools:
  list_topics         - topics in display order
  ask_topic           - answer and citations for a key
  reset_conversation  - start over

Resources:
  folio://topics
  folio://sections/{key}

Example configuration:
  {
    "mcpServers": {
      "folio": {
        "command": "/path/to/folio",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	ports := &mcp.Ports{
		Loader: svc.Loader,
		Conversations: func(s *domain.Snapshot) driving.ConversationService {
			return svc.Conversations(s, navigation.NewHistory(nil))
		},
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
