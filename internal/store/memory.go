package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
)

// Memory keeps collections in process. It backs tests and local runs with
// STORE_DRIVER=memory; contents are lost on exit.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]Fields
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]Fields)}
}

func (m *Memory) Create(_ context.Context, collection string, doc Fields) (string, error) {
	if collection == "" {
		return "", &apperror.WriteError{Err: errNoCollection}
	}
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(collection)[id] = doc.Clone()
	return id, nil
}

func (m *Memory) List(_ context.Context, collection string) (map[string]Fields, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.collections[collection]
	out := make(map[string]Fields, len(docs))
	for id, doc := range docs {
		out[id] = doc.Clone()
	}
	return out, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, doc Fields) error {
	if collection == "" {
		return &apperror.WriteError{ID: id, Err: errNoCollection}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(collection)[id] = doc.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close(context.Context) error { return nil }

// bucket must be called with mu held for writing.
func (m *Memory) bucket(collection string) map[string]Fields {
	b, ok := m.collections[collection]
	if !ok {
		b = make(map[string]Fields)
		m.collections[collection] = b
	}
	return b
}
