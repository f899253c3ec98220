package memory

import (
	"context"
	"testing"

	"legal-assist-be/pkg/agent/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointStoreRoundTrip(t *testing.T) {
	store := NewCheckpointStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	s := state.NewSession("s1")
	s.Jurisdiction = "NSW"
	s.Messages = append(s.Messages, state.TurnMessage{Role: state.RoleUser, Content: "hello"})

	require.NoError(t, store.Put(ctx, s))

	got, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "NSW", got.Jurisdiction)
	assert.Len(t, got.Messages, 1)
}

func TestCheckpointStoreOverwrite(t *testing.T) {
	store := NewCheckpointStore()
	ctx := context.Background()

	s := state.NewSession("s1")
	require.NoError(t, store.Put(ctx, s))

	updated := state.NewSession("s1")
	updated.Mode = state.ModeBrief
	require.NoError(t, store.Put(ctx, updated))

	got, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, state.ModeBrief, got.Mode)
}

func TestCheckpointStoreDelete(t *testing.T) {
	store := NewCheckpointStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, state.NewSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, found, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}
