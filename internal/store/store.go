// Package store is the document store client. It creates, lists, overwrites
// and deletes schemaless documents grouped in named collections. Drivers
// live next to the interface: Mongo (default), Postgres JSONB and an
// in-process memory store.
package store

import (
	"context"
	"errors"
)

// Collection names used by the dashboard.
const (
	Itinerary = "itinerary"
	Flights   = "flights"
	Notes     = "notes"
	Hotels    = "hotels"
	Foods     = "must_try_foods"
	Packing   = "packing_list"
)

// Collections lists every collection the dashboard reads or writes.
var Collections = []string{Itinerary, Flights, Notes, Hotels, Foods, Packing}

var errNoCollection = errors.New("collection name is empty")

// Store is the data-access contract. Update is Set: a full overwrite of the
// document at id, created when absent. Deleting an unknown id is not an error.
type Store interface {
	Create(ctx context.Context, collection string, doc Fields) (string, error)
	List(ctx context.Context, collection string) (map[string]Fields, error)
	Set(ctx context.Context, collection, id string, doc Fields) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// IsCollection reports whether name is one of the dashboard collections.
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
