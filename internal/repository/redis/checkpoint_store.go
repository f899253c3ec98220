package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const checkpointTTL = 24 * time.Hour

// CheckpointStore keeps session state in Redis so multiple instances
// can share sessions.
type CheckpointStore struct {
	client *redis.Client
}

var _ store.CheckpointStore = &CheckpointStore{}

func NewCheckpointStore(redisURL string) (*CheckpointStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &CheckpointStore{
		client: redis.NewClient(opts),
	}, nil
}

func checkpointKey(sessionID string) string {
	return "session:checkpoint:" + sessionID
}

func (s *CheckpointStore) Get(ctx context.Context, sessionID string) (*state.Session, bool, error) {
	data, err := s.client.Get(ctx, checkpointKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis checkpoint read failed: %w", err)
	}

	var session state.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false, fmt.Errorf("checkpoint unmarshal failed: %w", err)
	}
	return &session, true, nil
}

func (s *CheckpointStore) Put(ctx context.Context, session *state.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("checkpoint marshal failed: %w", err)
	}
	if err := s.client.Set(ctx, checkpointKey(session.ID), data, checkpointTTL).Err(); err != nil {
		return fmt.Errorf("redis checkpoint write failed: %w", err)
	}
	return nil
}

func (s *CheckpointStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, checkpointKey(sessionID)).Err()
}

// Close releases the underlying client.
func (s *CheckpointStore) Close() error {
	return s.client.Close()
}
