package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	id, err := u.NewULIDFromTimestamp(now)
	require.NoError(t, err)
	assert.Len(t, id, 26)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func TestNewULIDFromTimestampUnique(t *testing.T) {
	u := New()
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := u.NewULIDFromTimestamp(now)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
