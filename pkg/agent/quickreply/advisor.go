package quickreply

import (
	"context"

	"legal-assist-be/pkg/agent/state"
)

// Suggestion is the advisory output attached to a chat reply.
type Suggestion struct {
	QuickReplies []string `json:"quick_replies"`
	SuggestBrief bool     `json:"suggest_brief"`
}

// Advisor proposes quick-reply chips for the turn just completed.
// Purely advisory: failures must never fail the turn.
type Advisor interface {
	Advise(ctx context.Context, messages []state.TurnMessage, response string) (*Suggestion, error)
}

// FallbackSuggestion is used when the advisor fails.
func FallbackSuggestion() *Suggestion {
	return &Suggestion{
		QuickReplies: []string{"Tell me more", "What are my options?"},
		SuggestBrief: false,
	}
}
