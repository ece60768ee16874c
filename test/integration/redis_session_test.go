package integration

import (
	"context"
	"os"
	"testing"

	redisstore "persona-assistant-be/internal/repository/redis"
	"persona-assistant-be/pkg/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not reachable: %v", err)
	}

	sessionID := "it-redis-" + uuid.New().String()
	history := []store.Turn{
		{Speaker: store.SpeakerUser, Text: "ping"},
		{Speaker: store.SpeakerAssistant, Text: "pong"},
	}

	writer := redisstore.NewSessionStore(rdb)
	require.NoError(t, writer.StoreSession(ctx, sessionID, "casual_visitor", history))
	defer writer.DeleteSession(ctx, sessionID)

	reader := redisstore.NewSessionStore(rdb)
	record, found, err := reader.RetrieveSession(ctx, sessionID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "casual_visitor", record.Role)
	assert.Equal(t, history, record.History)

	t.Run("Absent Session Is Not An Error", func(t *testing.T) {
		_, found, err := reader.RetrieveSession(ctx, "it-redis-missing-"+uuid.New().String())
		require.NoError(t, err)
		assert.False(t, found)
	})
}
