// Package mcp provides an MCP (Model Context Protocol) server adapter for folio.
// It lets AI assistants browse the portfolio topics and ask them one at a time.
package mcp

import "errors"

// ErrMissingLoader is returned when the snapshot loader is not provided.
var ErrMissingLoader = errors.New("mcp: snapshot loader is required")

// ErrMissingConversationFactory is returned when no conversation factory is provided.
var ErrMissingConversationFactory = errors.New("mcp: conversation factory is required")
