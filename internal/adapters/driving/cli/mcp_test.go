package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range mcpCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "serve")
}

func TestMCPServeCmd_Long(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "list_topics")
	assert.Contains(t, mcpServeCmd.Long, "folio://sections/{key}")
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	prev := appServices
	appServices = nil
	defer func() { appServices = prev }()
	defer rootCmd.SetArgs(nil)

	_, err := execute("mcp", "serve")

	assert.ErrorIs(t, err, errNotConfigured)
}
