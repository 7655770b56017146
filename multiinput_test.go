package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
	"github.com/dudk/patch/mock"
)

func TestMultiInputCollectsManySources(t *testing.T) {
	g := patch.New()
	a := mock.NewProcessor(g)
	b := mock.NewProcessor(g)
	sink := mock.NewProcessor(g)

	require.NoError(t, patch.Connect(a.Value(), sink.AddItem()))
	require.NoError(t, patch.Connect(b.Value(), sink.AddItem()))

	require.NoError(t, a.SetValue().Set(1))
	require.NoError(t, b.SetValue().Set(2))
	assert.Equal(t, []any{1, 2}, sink.ItemData())
}

func TestMultiInputReplacesAlongSameEdge(t *testing.T) {
	g := patch.New()
	a := mock.NewProcessor(g)
	sink := mock.NewProcessor(g)

	require.NoError(t, patch.Connect(a.Value(), sink.AddItem()))

	// two pushes along one edge update a single entry in place
	require.NoError(t, a.SetValue().Set(1))
	require.NoError(t, a.SetValue().Set(2))
	assert.Equal(t, []any{2}, sink.ItemData())
}

func TestMultiInputKeepsPositionOnReplace(t *testing.T) {
	g := patch.New()
	a := mock.NewProcessor(g)
	sink := mock.NewProcessor(g)

	require.NoError(t, patch.Connect(a.Value(), sink.AddItem()))
	require.NoError(t, a.SetValue().Set(1))

	// a direct add lands behind the edge's entry
	_, err := sink.AddItem().Add(10)
	require.NoError(t, err)

	require.NoError(t, a.SetValue().Set(2))
	assert.Equal(t, []any{2, 10}, sink.ItemData())
}

func TestMultiInputDisconnectRemovesEntry(t *testing.T) {
	g := patch.New()
	a := mock.NewProcessor(g)
	b := mock.NewProcessor(g)
	sink := mock.NewProcessor(g)

	require.NoError(t, patch.Connect(a.Value(), sink.AddItem()))
	require.NoError(t, patch.Connect(b.Value(), sink.AddItem()))
	require.NoError(t, a.SetValue().Set(1))
	require.NoError(t, b.SetValue().Set(2))

	require.NoError(t, patch.Disconnect(a.Value(), sink.AddItem()))
	assert.Equal(t, []any{2}, sink.ItemData())

	// the remaining edge still routes correctly
	require.NoError(t, b.SetValue().Set(3))
	assert.Equal(t, []any{3}, sink.ItemData())
}

func TestMultiInputCascades(t *testing.T) {
	g := patch.New()
	sink := mock.NewProcessor(g)
	rec := mock.NewRecorder(g, patch.Any)

	require.NoError(t, patch.Connect(sink.Items(), rec.Receive()))

	id, err := sink.AddItem().Add(1)
	require.NoError(t, err)
	require.NoError(t, sink.AddItem().Replace(id, 2))
	require.NoError(t, sink.AddItem().Remove(id))

	require.Len(t, rec.Received(), 3)
	assert.Equal(t, []any{1}, rec.Received()[0])
	assert.Equal(t, []any{2}, rec.Received()[1])
	assert.Empty(t, rec.Received()[2])
}

func TestDirectAddIndependentOfEdges(t *testing.T) {
	g := patch.New()
	a := mock.NewProcessor(g)
	sink := mock.NewProcessor(g)

	require.NoError(t, patch.Connect(a.Value(), sink.AddItem()))
	_, err := sink.AddItem().Add(10)
	require.NoError(t, err)

	require.NoError(t, a.SetValue().Set(1))
	require.NoError(t, patch.Disconnect(a.Value(), sink.AddItem()))

	// direct entries survive the disconnect
	assert.Equal(t, []any{10}, sink.ItemData())
}
