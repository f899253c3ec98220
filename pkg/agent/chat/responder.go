package chat

import (
	"context"

	"legal-assist-be/pkg/agent/state"
)

// Snippet is a retrieved knowledge passage used to ground the reply.
type Snippet struct {
	Title   string
	Content string
	Source  string
	URL     string
}

// KnowledgeSearcher retrieves legislation and guidance passages
// relevant to the user's query.
type KnowledgeSearcher interface {
	Search(ctx context.Context, query, jurisdiction string, limit int) ([]Snippet, error)
}

// Responder produces the assistant reply for a normal chat turn.
type Responder interface {
	Respond(ctx context.Context, s *state.Session) (string, error)
}

// FallbackReply is shown when the responder fails outright.
const FallbackReply = "I encountered an issue processing your request. Could you try rephrasing your question?"

// FallbackQuickReplies accompany the fallback reply.
var FallbackQuickReplies = []string{"What can you help with?", "Tell me about tenant rights"}
