package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeBodyKeepsTimestamps(t *testing.T) {
	doc := Fields{"name": "Lotte Hotel", "check_in_time": time.Date(2025, 8, 12, 13, 0, 0, 0, time.UTC)}

	body, err := encodeBody(doc)
	require.NoError(t, err)

	back, err := decodeBody([]byte(body))
	require.NoError(t, err)
	require.Equal(t, doc["check_in_time"], back["check_in_time"])
	require.Equal(t, "Lotte Hotel", back["name"])
}
