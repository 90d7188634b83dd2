package views

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// spyStore records mutating calls and can be told to fail them.
type spyStore struct {
	store.Store

	mu        sync.Mutex
	mutations []string

	readErr   error
	writeErr  error
	deleteErr error
}

func newSpyStore() *spyStore {
	return &spyStore{Store: store.NewMemory()}
}

func (s *spyStore) record(call string) {
	s.mu.Lock()
	s.mutations = append(s.mutations, call)
	s.mu.Unlock()
}

func (s *spyStore) Mutations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.mutations...)
}

func (s *spyStore) Create(ctx context.Context, collection string, doc store.Fields) (string, error) {
	s.record("create " + collection)
	if s.writeErr != nil {
		return "", &apperror.WriteError{Collection: collection, Err: s.writeErr}
	}
	return s.Store.Create(ctx, collection, doc)
}

func (s *spyStore) List(ctx context.Context, collection string) (map[string]store.Fields, error) {
	if s.readErr != nil {
		return nil, &apperror.ReadError{Collection: collection, Err: s.readErr}
	}
	return s.Store.List(ctx, collection)
}

func (s *spyStore) Set(ctx context.Context, collection, id string, doc store.Fields) error {
	s.record("set " + collection + "/" + id)
	if s.writeErr != nil {
		return &apperror.WriteError{Collection: collection, ID: id, Err: s.writeErr}
	}
	return s.Store.Set(ctx, collection, id, doc)
}

func (s *spyStore) Delete(ctx context.Context, collection, id string) error {
	s.record("delete " + collection + "/" + id)
	if s.deleteErr != nil {
		return &apperror.DeleteError{Collection: collection, ID: id, Err: s.deleteErr}
	}
	return s.Store.Delete(ctx, collection, id)
}

func cetClock(t *testing.T) models.TripClock {
	t.Helper()
	loc, err := time.LoadLocation("CET")
	require.NoError(t, err)
	return models.NewTripClock(loc)
}

func listCollection(t *testing.T, st store.Store, collection string) map[string]store.Fields {
	t.Helper()
	docs, err := st.List(context.Background(), collection)
	require.NoError(t, err)
	return docs
}
