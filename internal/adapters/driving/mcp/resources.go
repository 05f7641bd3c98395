package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for folio resources.
	uriScheme = "folio://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "topics",
		Name:        "topics",
		Description: "All portfolio topics in display order",
		MIMEType:    "application/json",
	}, s.handleTopicsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{key}",
		Name:        "section",
		Description: "The answer text for a topic key",
		MIMEType:    "text/markdown",
	}, s.handleSectionResource)
}

// handleTopicsResource returns every topic with its section and citation status.
func (s *Server) handleTopicsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	conv, err := s.conversation(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(describeTopics(conv, conv.Snapshot().Topics()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling topics: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource returns the answer for a key without asking it.
func (s *Server) handleSectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractSectionKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	conv, err := s.conversation(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := conv.Snapshot()
	label, ok := snapshot.Label(key)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	section, ok := snapshot.SectionFor(label)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     "## " + section.Title + "\n\n" + section.Body,
		}},
	}, nil
}

// extractSectionKey extracts the key from a URI like folio://sections/{key}.
func extractSectionKey(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
