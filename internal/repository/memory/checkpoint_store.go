package memory

import (
	"context"
	"time"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// CheckpointStore keeps session state in process memory. Sessions idle
// for over an hour are evicted; the database snapshot remains the
// durable copy.
type CheckpointStore struct {
	cache *cache.Cache
}

var _ store.CheckpointStore = &CheckpointStore{}

func NewCheckpointStore() *CheckpointStore {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CheckpointStore{
		cache: c,
	}
}

func (s *CheckpointStore) Get(ctx context.Context, sessionID string) (*state.Session, bool, error) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*state.Session), true, nil
	}
	return nil, false, nil
}

func (s *CheckpointStore) Put(ctx context.Context, session *state.Session) error {
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (s *CheckpointStore) Delete(ctx context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
