package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// UnavailableNotice is returned in place of an answer with no section.
const UnavailableNotice = "Content unavailable for this section."

// ListTopicsInput is the input schema for the list_topics tool.
type ListTopicsInput struct {
	RemainingOnly bool `json:"remaining_only,omitempty" jsonschema:"only list topics not yet asked in this conversation"`
}

// ListTopicsOutput is the output schema for the list_topics tool.
type ListTopicsOutput struct {
	Topics []TopicOutput `json:"topics"`
	Count  int           `json:"count"`
}

// TopicOutput describes one askable topic.
type TopicOutput struct {
	Label      string `json:"label"`
	Key        string `json:"key"`
	HasSection bool   `json:"has_section"`
	Citations  int    `json:"citations"`
	Asked      bool   `json:"asked"`
}

// AskTopicInput is the input schema for the ask_topic tool.
type AskTopicInput struct {
	Key string `json:"key" jsonschema:"the internal key of the topic to ask, as returned by list_topics"`
}

// AskTopicOutput is the output schema for the ask_topic tool.
type AskTopicOutput struct {
	TurnID    string           `json:"turn_id"`
	Label     string           `json:"label"`
	Key       string           `json:"key"`
	Available bool             `json:"available"`
	Answer    string           `json:"answer"`
	Citations []CitationOutput `json:"citations,omitempty"`
	Remaining []TopicOutput    `json:"remaining"`
	Exhausted bool             `json:"exhausted"`
}

// CitationOutput is one evidence item supporting an answer.
type CitationOutput struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Type         string `json:"type,omitempty"`
	WhyItMatters string `json:"why_it_matters,omitempty"`
}

// ResetInput is the input schema for the reset_conversation tool.
type ResetInput struct{}

// ResetOutput is the output schema for the reset_conversation tool.
type ResetOutput struct {
	Remaining int `json:"remaining"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_topics",
		Description: "List the portfolio topics that can be asked, in display order",
	}, s.handleListTopics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_topic",
		Description: "Ask a portfolio topic by key and get the answer with its verification citations",
	}, s.handleAskTopic)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset_conversation",
		Description: "Forget the topics asked so far and start a new conversation",
	}, s.handleReset)
}

// handleListTopics handles the list_topics tool invocation.
func (s *Server) handleListTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListTopicsInput,
) (*mcp.CallToolResult, ListTopicsOutput, error) {
	conv, err := s.conversation(ctx)
	if err != nil {
		return nil, ListTopicsOutput{}, err
	}

	var topics []domain.Topic
	if input.RemainingOnly {
		topics = conv.RemainingTopics()
	} else {
		topics = conv.Snapshot().Topics()
	}

	output := ListTopicsOutput{
		Topics: describeTopics(conv, topics),
		Count:  len(topics),
	}
	return nil, output, nil
}

// handleAskTopic handles the ask_topic tool invocation.
func (s *Server) handleAskTopic(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskTopicInput,
) (*mcp.CallToolResult, AskTopicOutput, error) {
	key := strings.TrimSpace(input.Key)
	if key == "" {
		return nil, AskTopicOutput{}, domain.ErrInvalidInput
	}

	conv, err := s.conversation(ctx)
	if err != nil {
		return nil, AskTopicOutput{}, err
	}

	turn := conv.SelectTopic(key)
	// There is no typing animation here, so the answer is complete at once.
	conv.RevealSuggestions()

	output := AskTopicOutput{
		TurnID:    turn.ID,
		Label:     turn.Label,
		Key:       turn.InternalKey,
		Available: turn.Available(),
		Answer:    UnavailableNotice,
		Remaining: describeTopics(conv, conv.RemainingTopics()),
		Exhausted: conv.Exhausted(),
	}
	if body, err := turn.Body(); err == nil {
		output.Answer = body
	}
	for _, item := range turn.Evidence {
		output.Citations = append(output.Citations, CitationOutput{
			Title:        item.Title,
			URL:          item.URL,
			Type:         item.Type,
			WhyItMatters: item.WhyItMatters,
		})
	}

	return nil, output, nil
}

// handleReset handles the reset_conversation tool invocation.
func (s *Server) handleReset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ResetInput,
) (*mcp.CallToolResult, ResetOutput, error) {
	conv, err := s.resetConversation(ctx)
	if err != nil {
		return nil, ResetOutput{}, err
	}
	return nil, ResetOutput{Remaining: len(conv.RemainingTopics())}, nil
}

func describeTopics(conv driving.ConversationService, topics []domain.Topic) []TopicOutput {
	snapshot := conv.Snapshot()

	asked := make(map[string]bool)
	for _, t := range conv.Turns() {
		asked[t.InternalKey] = true
	}

	out := make([]TopicOutput, len(topics))
	for i, t := range topics {
		_, hasSection := snapshot.SectionFor(t.Label)
		out[i] = TopicOutput{
			Label:      t.Label,
			Key:        t.Key,
			HasSection: hasSection,
			Citations:  len(snapshot.EvidenceFor(t.Key)),
			Asked:      asked[t.Key],
		}
	}
	return out
}
