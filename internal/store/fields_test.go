package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldsAccessors(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	ts := time.Date(2025, 8, 12, 17, 5, 0, 0, seoul)

	f := Fields{
		"section":   "Seoul",
		"checked":   true,
		"departure": ts,
		"legacy":    "2025-08-11T14:00:00Z",
		"count":     3,
	}

	assert.Equal(t, "Seoul", f.String("section"))
	assert.Equal(t, "", f.String("count"))
	assert.Equal(t, "Untitled", f.StringOr("missing", "Untitled"))
	assert.True(t, f.Bool("checked"))
	assert.False(t, f.Bool("section"))
	assert.True(t, f.Time("departure").Equal(ts))
	assert.Equal(t, time.UTC, f.Time("departure").Location())
	assert.True(t, f.Time("legacy").Equal(time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC)))
	assert.True(t, f.Time("section").IsZero())
}

func TestFieldsClone(t *testing.T) {
	f := Fields{"item": "Adapter", "checked": false}
	c := f.Clone()
	c["item"] = "Charger"

	assert.Equal(t, "Adapter", f["item"])
}

func TestIsCollection(t *testing.T) {
	assert.True(t, IsCollection("must_try_foods"))
	assert.False(t, IsCollection("users"))
}
