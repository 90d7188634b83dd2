package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
)

// CallTimeout bounds every single store round trip.
const CallTimeout = 5 * time.Second

// Mongo stores each collection as a Mongo collection keyed by ObjectID.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{client: client, db: db}
}

func (m *Mongo) Create(ctx context.Context, collection string, doc Fields) (string, error) {
	if collection == "" {
		return "", &apperror.WriteError{Err: errNoCollection}
	}
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	oid := primitive.NewObjectID()
	body := toBSON(doc)
	body["_id"] = oid

	if _, err := m.db.Collection(collection).InsertOne(ctx, body); err != nil {
		return "", &apperror.WriteError{Collection: collection, Err: err}
	}
	return oid.Hex(), nil
}

func (m *Mongo) List(ctx context.Context, collection string) (map[string]Fields, error) {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, &apperror.ReadError{Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, &apperror.ReadError{Collection: collection, Err: err}
	}

	out := make(map[string]Fields, len(raw))
	for _, doc := range raw {
		id, f := fromBSON(doc)
		if id == "" {
			continue
		}
		out[id] = f
	}
	return out, nil
}

func (m *Mongo) Set(ctx context.Context, collection, id string, doc Fields) error {
	if collection == "" {
		return &apperror.WriteError{ID: id, Err: errNoCollection}
	}
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := m.db.Collection(collection).ReplaceOne(ctx, idFilter(id), toBSON(doc), opts); err != nil {
		return &apperror.WriteError{Collection: collection, ID: id, Err: err}
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	// DeletedCount == 0 is fine: the document is gone either way.
	if _, err := m.db.Collection(collection).DeleteOne(ctx, idFilter(id)); err != nil {
		return &apperror.DeleteError{Collection: collection, ID: id, Err: err}
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
