package dto

import (
	"time"

	"legal-assist-be/pkg/agent/state"

	"github.com/google/uuid"
)

type TurnMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatTurnRequest carries one conversation turn. Context is a map of
// free-text ambient hints keyed by description, e.g.
// "User's State/Territory" -> "NSW".
type ChatTurnRequest struct {
	SessionId string            `json:"session_id"`
	Messages  []TurnMessage     `json:"messages" validate:"required,min=1,dive"`
	Context   map[string]string `json:"context"`
}

type ChatTurnResponse struct {
	SessionId       string                 `json:"session_id"`
	Messages        []TurnMessage          `json:"messages"`
	Mode            string                 `json:"mode"`
	SafetyResult    string                 `json:"safety_result"`
	CrisisResources []state.CrisisResource `json:"crisis_resources,omitempty"`
	QuickReplies    []string               `json:"quick_replies,omitempty"`
	SuggestBrief    bool                   `json:"suggest_brief"`
	SuggestLawyer   bool                   `json:"suggest_lawyer"`
}

type ChatSessionResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Mode         string    `json:"mode"`
	LegalTopic   string    `json:"legal_topic"`
	Jurisdiction string    `json:"jurisdiction"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Session  ChatSessionResponse `json:"session"`
	Messages []TurnMessage       `json:"messages"`
}
