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

func TestPostgresStore(t *testing.T) {
	uri := os.Getenv("TEST_POSTGRES_URI")
	if uri == "" {
		t.Skip("TEST_POSTGRES_URI not set")
	}

	storetest.Run(t, func(t *testing.T) store.Store {
		db, err := database.ConnectPostgres(context.Background(), uri, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return store.NewPostgres(db)
	})
}
