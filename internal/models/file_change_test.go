package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeTypeFromLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		letter string
		want   ChangeType
		ok     bool
	}{
		{"A", Added, true},
		{"M", Modified, true},
		{"D", Deleted, true},
		{"R", Modified, false},
		{"", Modified, false},
	}

	for _, tt := range tests {
		got, ok := ChangeTypeFromLetter(tt.letter)
		assert.Equal(t, tt.ok, ok, tt.letter)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.letter)
			assert.Equal(t, tt.letter, got.Letter())
		}
	}
}

func TestChangesetSummary(t *testing.T) {
	t.Parallel()

	cs := NewChangeset(10, "alice", "2024-03-01", "fixes #100\nlonger explanation", nil)
	assert.Equal(t, "fixes #100", cs.Summary())

	single := NewChangeset(11, "bob", "2024-03-02", "one liner", nil)
	assert.Equal(t, "one liner", single.Summary())
}
