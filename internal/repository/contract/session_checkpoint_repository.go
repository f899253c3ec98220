package contract

import "context"

// SessionCheckpointRepository persists the orchestrator's session
// state snapshot, one row per session, overwritten each turn.
type SessionCheckpointRepository interface {
	Upsert(ctx context.Context, sessionId string, state []byte) error
	FindBySessionId(ctx context.Context, sessionId string) ([]byte, error)
	Delete(ctx context.Context, sessionId string) error
}
