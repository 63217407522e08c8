package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		v := New()
		assert.False(t, seen[v], "duplicate id %q", v)
		seen[v] = true
	}
}

func TestNew_NonEmpty(t *testing.T) {
	assert.Greater(t, len(New()), 12)
}
