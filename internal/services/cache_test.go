package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/database"
)

func TestRedisSessionStore(t *testing.T) {
	uri := os.Getenv("TEST_REDIS_URI")
	if uri == "" {
		t.Skip("TEST_REDIS_URI not set")
	}
	ctx := context.Background()
	client, err := database.ConnectRedis(ctx, uri, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	m := NewSessionManager(NewRedisSessionStore(client), time.Minute, SampleItinerary(), nil)

	s, err := m.Create(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Delete(ctx, s.ID) })

	ttl, err := client.TTL(ctx, SessionKeyPrefix+s.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = m.Update(ctx, s.ID, func(s *Session) error {
		s.Itinerary[0].StoreID = "66b8c1f0a1b2c3d4e5f60718"
		return nil
	})
	require.NoError(t, err)

	loaded, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "66b8c1f0a1b2c3d4e5f60718", loaded.Itinerary[0].StoreID)

	stale := *loaded
	_, err = m.Update(ctx, s.ID, func(s *Session) error {
		s.Itinerary[1].Location = "Layover"
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, m.Touch(ctx, stale.ID))
	loaded, err = m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Layover", loaded.Itinerary[1].Location)

	require.NoError(t, m.Delete(ctx, s.ID))
	assert.ErrorIs(t, m.Touch(ctx, s.ID), ErrSessionNotFound)
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
