package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/database"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
	"github.com/AnshRaj112/tripboard-backend/internal/store/storetest"
)

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	storetest.Run(t, func(t *testing.T) store.Store {
		client, db, err := database.Connect(context.Background(), uri, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
		return store.NewMongo(client, db)
	})
}
