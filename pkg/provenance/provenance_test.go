package provenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryChanged(t *testing.T) {
	assert.False(t, Summary{}.Changed())
	assert.True(t, Summary{Added: 1}.Changed())
	assert.True(t, Summary{Updated: 2}.Changed())
}

func TestEntryChanged(t *testing.T) {
	assert.False(t, (&Entry{Source: "t-1"}).Changed())
	assert.True(t, (&Entry{Gadgets: Summary{Added: 1}}).Changed())
	assert.True(t, (&Entry{TagsAdded: 3}).Changed())
	assert.True(t, (&Entry{NotesAdded: 1}).Changed())
}

func TestEntryString(t *testing.T) {
	e := &Entry{
		Source:    "transcript-42",
		Weapons:   Summary{Added: 1, Updated: 2},
		TagsAdded: 4,
	}

	s := e.String()
	assert.Contains(t, s, "transcript-42")
	assert.Contains(t, s, "weapons +1/~2")
	assert.Contains(t, s, "4 tags")
	assert.NotContains(t, s, "gadgets")

	empty := &Entry{Source: "transcript-43"}
	assert.Equal(t, "transcript-43: no changes", empty.String())
}
