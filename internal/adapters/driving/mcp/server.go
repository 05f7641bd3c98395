package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for folio.
//
// Content is loaded on first use and kept for the life of the server. A
// failed load is not cached, so the next request tries again.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu   sync.Mutex
	conv driving.ConversationService
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "folio",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// conversation returns the shared conversation, loading content if needed.
func (s *Server) conversation(ctx context.Context) (driving.ConversationService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conv != nil {
		return s.conv, nil
	}

	snapshot, err := s.ports.Loader.Load(ctx)
	if err != nil {
		logger.Error("Failed to load content: %v", err)
		return nil, fmt.Errorf("loading content: %w", err)
	}

	conv := s.ports.Conversations(snapshot)
	conv.Initialize()
	s.conv = conv
	return conv, nil
}

// resetConversation replaces the conversation with a fresh one over the same
// snapshot. The old conversation's deep-link history is dropped with it, so no
// earlier topic is restored.
func (s *Server) resetConversation(ctx context.Context) (driving.ConversationService, error) {
	old, err := s.conversation(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.ports.Conversations(old.Snapshot())
	conv.Initialize()
	s.conv = conv
	return conv, nil
}
