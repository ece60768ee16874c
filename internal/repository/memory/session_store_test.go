package memory

import (
	"context"
	"fmt"
	"testing"

	"persona-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	history := []store.Turn{
		{Speaker: store.SpeakerUser, Text: "hello"},
		{Speaker: store.SpeakerAssistant, Text: "hi"},
	}
	require.NoError(t, s.StoreSession(ctx, "s1", "casual_visitor", history))

	record, found, err := s.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "s1", record.SessionID)
	assert.Equal(t, "casual_visitor", record.Role)
	assert.Equal(t, history, record.History)
}

func TestSessionStoreAbsentIsNotError(t *testing.T) {
	s := NewSessionStore()

	record, found, err := s.RetrieveSession(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, record)
}

func TestSessionStoreTruncatesOnWrite(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	var history []store.Turn
	for i := 0; i < store.MaxHistoryTurns+4; i++ {
		history = append(history, store.Turn{Speaker: store.SpeakerUser, Text: fmt.Sprintf("turn-%d", i)})
	}
	require.NoError(t, s.StoreSession(ctx, "s1", "casual_visitor", history))

	record, _, err := s.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, record.History, store.MaxHistoryTurns)
	assert.Equal(t, "turn-4", record.History[0].Text)
}

func TestSessionStoreLastWriteWins(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.StoreSession(ctx, "s1", "casual_visitor", []store.Turn{{Speaker: store.SpeakerUser, Text: "first"}}))
	require.NoError(t, s.StoreSession(ctx, "s1", "software_engineer", []store.Turn{{Speaker: store.SpeakerUser, Text: "second"}}))

	record, _, err := s.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "software_engineer", record.Role)
	require.Len(t, record.History, 1)
	assert.Equal(t, "second", record.History[0].Text)
}

func TestSessionStoreDelete(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.StoreSession(ctx, "s1", "casual_visitor", nil))
	require.NoError(t, s.DeleteSession(ctx, "s1"))

	_, found, err := s.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCachedSessionStoreReadThrough(t *testing.T) {
	backend := NewSessionStore()
	cached := NewCachedSessionStore(backend)
	ctx := context.Background()

	history := []store.Turn{{Speaker: store.SpeakerUser, Text: "hey"}}
	require.NoError(t, cached.StoreSession(ctx, "s1", "casual_visitor", history))

	// Visible through the cache layer
	record, found, err := cached.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, history, record.History)

	// And written through to the backend
	record, found, err = backend.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, history, record.History)

	// Delete clears both layers
	require.NoError(t, cached.DeleteSession(ctx, "s1"))
	_, found, err = cached.RetrieveSession(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}
