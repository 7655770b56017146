package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
)

func TestMultiInputData(t *testing.T) {
	d := patch.NewMultiInputData()

	id1 := d.Add("a")
	id2 := d.Add("b")
	assert.Equal(t, []any{"a", "b"}, d.Data())
	assert.Equal(t, 2, d.Len())

	// replace keeps the position, remove+add would not
	require.NoError(t, d.Replace(id1, "c"))
	assert.Equal(t, []any{"c", "b"}, d.Data())

	require.NoError(t, d.Remove(id1))
	assert.Equal(t, []any{"b"}, d.Data())

	assert.ErrorIs(t, d.Remove(id1), patch.ErrUnknownID)
	assert.ErrorIs(t, d.Replace(id1, "x"), patch.ErrUnknownID)

	require.NoError(t, d.Remove(id2))
	assert.Equal(t, 0, d.Len())
}

func TestMultiInputDataIDsNeverReused(t *testing.T) {
	d := patch.NewMultiInputData()

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := d.Add(i)
		_, dup := seen[id]
		require.False(t, dup, "id %q reused", id)
		seen[id] = struct{}{}
		// draining the collection must not recycle ids
		require.NoError(t, d.Remove(id))
	}
}

func TestMultiInputDataClear(t *testing.T) {
	d := patch.NewMultiInputData()
	id := d.Add(1)
	d.Add(2)

	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.ErrorIs(t, d.Replace(id, 3), patch.ErrUnknownID)
}
