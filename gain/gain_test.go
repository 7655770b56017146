package gain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
	"github.com/dudk/patch/gain"
	"github.com/dudk/patch/mock"
	"github.com/dudk/patch/signal"
)

func TestGainDefaultIsUnity(t *testing.T) {
	g := patch.New()
	gn := gain.New(g)

	require.NoError(t, gn.SetSignal().Set(signal.Mono([]float64{1, -2, 3})))
	value, err := gn.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{1, -2, 3}}, value)
}

func TestGainAmplifies(t *testing.T) {
	g := patch.New()
	gn := gain.New(g)

	require.NoError(t, gn.SetSignal().Set(signal.Float64{{1, 2}, {3, 4}}))
	require.NoError(t, gn.SetFactor().Set(0.5))
	value, err := gn.Signal().Get()
	require.NoError(t, err)
	assert.Equal(t, signal.Float64{{0.5, 1}, {1.5, 2}}, value)
}

func TestGainCascades(t *testing.T) {
	g := patch.New()
	first := gain.New(g)
	second := gain.New(g)
	r := mock.NewRecorder(g, patch.TypeOf[signal.Float64]())
	require.NoError(t, patch.Connect(first.Signal(), second.SetSignal()))
	require.NoError(t, patch.Connect(second.Signal(), r.Receive()))

	require.NoError(t, first.SetFactor().Set(2.0))
	require.NoError(t, second.SetFactor().Set(3.0))
	require.NoError(t, first.SetSignal().Set(signal.Mono([]float64{1})))

	require.NotEmpty(t, r.Received())
	last := r.Received()[len(r.Received())-1].(signal.Float64)
	assert.Equal(t, 6.0, last[0][0])
}
