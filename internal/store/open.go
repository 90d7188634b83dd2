package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/config"
	"github.com/AnshRaj112/tripboard-backend/internal/database"
)

// Open connects the driver selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := database.Connect(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		return NewMongo(client, db), nil
	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.PostgresURI, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return NewPostgres(db), nil
	case config.StoreMemory:
		log.Warn("using in-memory document store, data is lost on restart")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
