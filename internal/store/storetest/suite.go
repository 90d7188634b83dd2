// Package storetest holds the compliance suite every store driver must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// Run exercises the data-access contract against a store implementation.
// Collections are suffixed with a random id so shared databases stay clean.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()
	ctx := context.Background()

	collection := func(t *testing.T) string {
		return "storetest_" + uuid.NewString()[:8]
	}

	t.Run("empty collection lists as empty map", func(t *testing.T) {
		s := makeStore(t)
		docs, err := s.List(ctx, collection(t))
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("create then list returns exactly the new document", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		dep := time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC)
		arr := time.Date(2025, 8, 12, 8, 5, 0, 0, time.UTC)

		id, err := s.Create(ctx, c, store.Fields{
			"departure":      "CPH",
			"arrival":        "ICN",
			"departure_time": dep,
			"arrival_time":   arr,
			"flight_number":  "QR160",
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		doc, ok := docs[id]
		require.True(t, ok, "listed ids: %v", docs)
		assert.Equal(t, "CPH", doc.String("departure"))
		assert.Equal(t, "ICN", doc.String("arrival"))
		assert.Equal(t, "QR160", doc.String("flight_number"))
		assert.True(t, dep.Equal(doc.Time("departure_time")))
		assert.True(t, arr.Equal(doc.Time("arrival_time")))
	})

	t.Run("create never reuses ids", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			id, err := s.Create(ctx, c, store.Fields{"item": "Socks", "checked": false})
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		assert.Len(t, docs, 5)
	})

	t.Run("set overwrites the whole document", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		id, err := s.Create(ctx, c, store.Fields{"section": "Seoul", "subsection": "Palaces", "extra": "x"})
		require.NoError(t, err)

		require.NoError(t, s.Set(ctx, c, id, store.Fields{"section": "Busan", "subsection": "Beaches"}))

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Busan", docs[id].String("section"))
		assert.Equal(t, "Beaches", docs[id].String("subsection"))
		assert.NotContains(t, docs[id], "extra")
	})

	t.Run("set on an absent id creates it", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		id := "64b7f0c2a1b2c3d4e5f60718"

		require.NoError(t, s.Set(ctx, c, id, store.Fields{"item": "Passport", "checked": true}))

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		require.Contains(t, docs, id)
		assert.True(t, docs[id].Bool("checked"))
	})

	t.Run("delete removes the document", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		keep, err := s.Create(ctx, c, store.Fields{"food": "Bibimbap", "where_to_get": "Jeonju"})
		require.NoError(t, err)
		gone, err := s.Create(ctx, c, store.Fields{"food": "Hotteok", "where_to_get": "Namdaemun"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, c, gone))

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		assert.NotContains(t, docs, gone)
		assert.Contains(t, docs, keep)
	})

	t.Run("delete of a nonexistent id is a no-op", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		require.NoError(t, s.Delete(ctx, c, "abc123"))

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		assert.NotContains(t, docs, "abc123")
	})

	t.Run("listed documents do not alias stored state", func(t *testing.T) {
		s := makeStore(t)
		c := collection(t)
		id, err := s.Create(ctx, c, store.Fields{"item": "Adapter", "checked": false})
		require.NoError(t, err)

		docs, err := s.List(ctx, c)
		require.NoError(t, err)
		docs[id]["item"] = "mutated"

		again, err := s.List(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, "Adapter", again[id].String("item"))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, makeStore(t).Ping(ctx))
	})
}
