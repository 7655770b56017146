package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
	"github.com/dudk/patch/gain"
	"github.com/dudk/patch/merge"
	"github.com/dudk/patch/signal"
)

func TestMergerEmpty(t *testing.T) {
	g := patch.New()
	m := merge.New(g)

	value, err := m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, 0, value.(signal.Float64).NumChannels())
}

func TestMergerStacksChannels(t *testing.T) {
	g := patch.New()
	m := merge.New(g)

	_, err := m.AddSignal().Add(signal.Mono([]float64{1, 2}))
	require.NoError(t, err)
	_, err = m.AddSignal().Add(signal.Float64{{3, 4}, {5, 6}})
	require.NoError(t, err)

	value, err := m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{1, 2}, {3, 4}, {5, 6}}, value)
}

func TestMergerRemove(t *testing.T) {
	g := patch.New()
	m := merge.New(g)

	first, err := m.AddSignal().Add(signal.Mono([]float64{1}))
	require.NoError(t, err)
	_, err = m.AddSignal().Add(signal.Mono([]float64{2}))
	require.NoError(t, err)
	require.NoError(t, m.AddSignal().Remove(first))

	value, err := m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{2}}, value)
}

func TestMergerTracksConnectedSources(t *testing.T) {
	g := patch.New()
	m := merge.New(g)
	left := gain.New(g)
	right := gain.New(g)
	require.NoError(t, patch.Connect(left.Signal(), m.AddSignal()))
	require.NoError(t, patch.Connect(right.Signal(), m.AddSignal()))

	require.NoError(t, left.SetSignal().Set(signal.Mono([]float64{1})))
	require.NoError(t, right.SetSignal().Set(signal.Mono([]float64{2})))

	value, err := m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{1}, {2}}, value)

	// updating one source replaces its channel in place
	require.NoError(t, left.SetFactor().Set(10.0))
	value, err = m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{10}, {2}}, value)

	// disconnecting a source drops its channel
	require.NoError(t, patch.Disconnect(right.Signal(), m.AddSignal()))
	value, err = m.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{10}}, value)
}
