package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fromBSON splits a decoded document into its id and field set, converting
// BSON-specific values to plain Go values.
func fromBSON(m bson.M) (string, Fields) {
	id := idString(m["_id"])
	f := make(Fields, len(m))
	for k, v := range m {
		if k == "_id" {
			continue
		}
		f[k] = plainValue(v)
	}
	return id, f
}

func toBSON(doc Fields) bson.M {
	m := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		if t, ok := v.(time.Time); ok {
			v = t.UTC()
		}
		m[k] = v
	}
	return m
}

func plainValue(v any) any {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.ObjectID:
		return x.Hex()
	case primitive.M:
		_, f := fromBSON(x)
		return f
	case primitive.A:
		out := make([]any, len(x))
		for i := range x {
			out[i] = plainValue(x[i])
		}
		return out
	default:
		return v
	}
}

func idString(v any) string {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case string:
		return x
	default:
		return ""
	}
}

// idFilter addresses a document by ObjectID when id is one, else by the raw
// string, so documents created by other tools stay reachable.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
