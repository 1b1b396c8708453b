package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	name, score, err := parseEntry(" Alice : 100.5")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
	assert.Equal(t, 100.5, score)

	for _, bad := range []string{"Alice", ":12", "Bob:fast"} {
		_, _, err := parseEntry(bad)
		assert.Error(t, err, bad)
	}
}
