package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
)

// Postgres keeps every collection in one JSONB table. Bodies are relaxed
// extended JSON so timestamps decode back to native values.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Create(ctx context.Context, collection string, doc Fields) (string, error) {
	if collection == "" {
		return "", &apperror.WriteError{Err: errNoCollection}
	}
	body, err := encodeBody(doc)
	if err != nil {
		return "", &apperror.WriteError{Collection: collection, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	id := uuid.NewString()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, body)
		VALUES ($1, $2, $3::jsonb)
	`, collection, id, body)
	if err != nil {
		return "", &apperror.WriteError{Collection: collection, Err: err}
	}
	return id, nil
}

func (p *Postgres) List(ctx context.Context, collection string) (map[string]Fields, error) {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, `SELECT id, body FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return nil, &apperror.ReadError{Collection: collection, Err: err}
	}
	defer rows.Close()

	out := make(map[string]Fields)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, &apperror.ReadError{Collection: collection, Err: err}
		}
		f, err := decodeBody(body)
		if err != nil {
			return nil, &apperror.ReadError{Collection: collection, Err: fmt.Errorf("document %s: %w", id, err)}
		}
		out[id] = f
	}
	if err := rows.Err(); err != nil {
		return nil, &apperror.ReadError{Collection: collection, Err: err}
	}
	return out, nil
}

func (p *Postgres) Set(ctx context.Context, collection, id string, doc Fields) error {
	if collection == "" {
		return &apperror.WriteError{ID: id, Err: errNoCollection}
	}
	body, err := encodeBody(doc)
	if err != nil {
		return &apperror.WriteError{Collection: collection, ID: id, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, body)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`, collection, id, body)
	if err != nil {
		return &apperror.WriteError{Collection: collection, ID: id, Err: err}
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	if _, err := p.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id); err != nil {
		return &apperror.DeleteError{Collection: collection, ID: id, Err: err}
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close(context.Context) error {
	return p.db.Close()
}

// encodeBody returns the JSONB text for doc. A string is passed to lib/pq so
// the value is not sent as bytea.
func encodeBody(doc Fields) (string, error) {
	b, err := bson.MarshalExtJSON(toBSON(doc), false, false)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeBody(body []byte) (Fields, error) {
	var m bson.M
	if err := bson.UnmarshalExtJSON(body, false, &m); err != nil {
		return nil, err
	}
	_, f := fromBSON(m)
	return f, nil
}
