package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/spectrum"
)

func TestAnalyzerEmpty(t *testing.T) {
	g := patch.New()
	a := spectrum.New(g)

	value, err := a.Magnitude().Get()
	require.NoError(t, err)
	assert.Empty(t, value.([]float64))
}

func TestAnalyzerSinePeak(t *testing.T) {
	g := patch.New()
	s := generator.NewSine(g)
	a := spectrum.New(g)
	require.NoError(t, patch.Connect(s.Signal(), a.SetSignal()))

	// 4 full cycles over 64 samples put the peak in bin 4
	require.NoError(t, s.SetSampleRate().Set(64))
	require.NoError(t, s.SetLength().Set(64))
	require.NoError(t, s.SetFrequency().Set(4.0))

	value, err := a.Magnitude().Get()
	require.NoError(t, err)
	magnitudes := value.([]float64)
	require.Len(t, magnitudes, 33)

	peak := 0
	for i, m := range magnitudes {
		if m > magnitudes[peak] {
			peak = i
		}
	}
	assert.Equal(t, 4, peak)
	// a pure tone splits its energy over the mirrored bins
	assert.InDelta(t, 0.5, magnitudes[peak], 1e-9)
}

func TestAnalyzerDCOffset(t *testing.T) {
	g := patch.New()
	a := spectrum.New(g)

	require.NoError(t, a.SetSignal().Set(signal.Mono([]float64{1, 1, 1, 1})))
	value, err := a.Magnitude().Get()
	require.NoError(t, err)
	magnitudes := value.([]float64)
	require.Len(t, magnitudes, 3)
	assert.InDelta(t, 1, magnitudes[0], 1e-9)
	for _, m := range magnitudes[1:] {
		assert.InDelta(t, 0, m, 1e-9)
	}
}
