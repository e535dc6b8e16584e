package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}

func TestULIDGenerator_SortsByTime(t *testing.T) {
	g := NewULIDGenerator()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	g.now = func() time.Time { return base }
	first := g.Generate()
	g.now = func() time.Time { return base.Add(time.Second) }
	second := g.Generate()

	_, err := ulid.ParseStrict(first)
	require.NoError(t, err)
	assert.Less(t, first, second)
}
