package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_AppendAndRender(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "", l.String())

	l.Append("Added expense: 2025-01-01, Food, 10, lunch")
	l.Append("Visualized expenses.")

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "Added expense: 2025-01-01, Food, 10, lunch\nVisualized expenses.", l.String())
}

func TestLog_EntriesIsACopy(t *testing.T) {
	l := New()
	l.Append("first")

	entries := l.Entries()
	entries[0] = "changed"
	entries = append(entries, "extra")

	assert.Equal(t, []string{"first"}, l.Entries())
	assert.Len(t, entries, 2)
}
