package database

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DefaultMongoDatabase is used when the URI carries no database path.
const DefaultMongoDatabase = "tripboard"

// Connect opens a Mongo client, pings it and returns the database named in
// the URI path.
func Connect(ctx context.Context, mongoURI string, log *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	// Longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	log.Info("connecting to MongoDB", zap.String("uri", MaskURI(mongoURI)))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	dbName := DatabaseName(mongoURI)
	log.Info("connected to MongoDB", zap.String("database", dbName))
	return client, client.Database(dbName), nil
}

// DatabaseName extracts the database from mongodb://host/<name>?opts,
// falling back to DefaultMongoDatabase.
func DatabaseName(mongoURI string) string {
	rest := mongoURI
	if i := strings.Index(rest, "://"); i != -1 {
		rest = rest[i+3:]
	}
	slash := strings.Index(rest, "/")
	if slash == -1 {
		return DefaultMongoDatabase
	}
	name := strings.SplitN(rest[slash+1:], "?", 2)[0]
	if name == "" {
		return DefaultMongoDatabase
	}
	return name
}

// MaskURI hides the password of user:pass@ credentials for logging.
func MaskURI(uri string) string {
	scheme := ""
	rest := uri
	if i := strings.Index(uri, "://"); i != -1 {
		scheme, rest = uri[:i+3], uri[i+3:]
	}
	at := strings.LastIndex(rest, "@")
	if at == -1 {
		return uri
	}
	creds := rest[:at]
	colon := strings.Index(creds, ":")
	if colon == -1 {
		return uri
	}
	return scheme + creds[:colon] + ":***" + rest[at:]
}
