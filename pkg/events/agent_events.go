package events

import "time"

// Event type codes emitted by the conversation pipeline.
const (
	TypeTurnCompleted        = "TURN_COMPLETED"
	TypeCrisisEscalated      = "CRISIS_ESCALATED"
	TypeBriefGenerated       = "BRIEF_GENERATED"
	TypeSafetyClassifierFail = "SAFETY_CLASSIFIER_FAILED"
)

// NewTurnCompleted is emitted after every persisted turn.
func NewTurnCompleted(sessionID, terminalNode string) Event {
	return BaseEvent{
		Type: TypeTurnCompleted,
		Data: map[string]interface{}{
			"session_id":    sessionID,
			"terminal_node": terminalNode,
		},
		OccurredAt: time.Now(),
	}
}

// NewCrisisEscalated is emitted when the safety gate escalated a turn.
// The payload deliberately excludes the user's message content.
func NewCrisisEscalated(sessionID, jurisdiction string, resourceCount int) Event {
	return BaseEvent{
		Type: TypeCrisisEscalated,
		Data: map[string]interface{}{
			"session_id":     sessionID,
			"jurisdiction":   jurisdiction,
			"resource_count": resourceCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewBriefGenerated is emitted when a brief episode completes.
func NewBriefGenerated(sessionID string, questionRounds int) Event {
	return BaseEvent{
		Type: TypeBriefGenerated,
		Data: map[string]interface{}{
			"session_id":      sessionID,
			"question_rounds": questionRounds,
		},
		OccurredAt: time.Now(),
	}
}

// NewSafetyClassifierFailed is emitted when the fallback classifier
// errored and the gate failed open.
func NewSafetyClassifierFailed(sessionID, reason string) Event {
	return BaseEvent{
		Type: TypeSafetyClassifierFail,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}
