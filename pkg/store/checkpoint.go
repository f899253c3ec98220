package store

import (
	"context"

	"legal-assist-be/pkg/agent/state"
)

// CheckpointStore persists session state between turns. Implementations
// must support a read-then-write cycle per turn; serialization of
// concurrent turns for the same session is handled by the caller.
type CheckpointStore interface {
	Get(ctx context.Context, sessionID string) (*state.Session, bool, error)
	Put(ctx context.Context, session *state.Session) error
	Delete(ctx context.Context, sessionID string) error
}
