package wav_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/wav"
)

func TestSinkUnsupportedBitDepth(t *testing.T) {
	g := patch.New()
	_, err := wav.NewSink(g, "out.wav", signal.BitDepth8)
	assert.ErrorIs(t, err, wav.ErrUnsupportedBitDepth)
}

func TestRoundTrip(t *testing.T) {
	g := patch.New()
	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	sink, err := wav.NewSink(g, path, signal.BitDepth16)
	require.NoError(t, err)
	require.NoError(t, sink.SetSampleRate().Set(8000))
	require.NoError(t, sink.SetSignal().Set(signal.Float64{
		{0, 0.5, -0.5, 0.25},
		{0.1, -0.1, 0.9, -0.9},
	}))
	require.NoError(t, sink.Save().Fire())

	source := wav.NewSource(g, path)
	rate, err := source.SampleRate().Get()
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)

	value, err := source.Signal().Get()
	require.NoError(t, err)
	loaded := value.(signal.Float64)
	require.Equal(t, 2, loaded.NumChannels())
	require.Equal(t, 4, loaded.Size())
	for i := range loaded {
		for j := range loaded[i] {
			assert.InDelta(t, [][]float64{
				{0, 0.5, -0.5, 0.25},
				{0.1, -0.1, 0.9, -0.9},
			}[i][j], loaded[i][j], 1e-3)
		}
	}
}

func TestSourceMissingFile(t *testing.T) {
	g := patch.New()
	source := wav.NewSource(g, filepath.Join(t.TempDir(), "missing.wav"))
	_, err := source.Signal().Get()
	assert.Error(t, err)
}

func TestSourcePushesOnConnect(t *testing.T) {
	g := patch.New()
	path := filepath.Join(t.TempDir(), "push.wav")

	sink, err := wav.NewSink(g, path, signal.BitDepth16)
	require.NoError(t, err)
	require.NoError(t, sink.SetSignal().Set(signal.Mono([]float64{0.5})))
	require.NoError(t, sink.Save().Fire())

	source := wav.NewSource(g, path)
	// warm the cache so connecting pushes the loaded signal
	_, err = source.Signal().Get()
	require.NoError(t, err)

	second, err := wav.NewSink(g, filepath.Join(t.TempDir(), "copy.wav"), signal.BitDepth16)
	require.NoError(t, err)
	require.NoError(t, patch.Connect(source.Signal(), second.SetSignal()))
	require.NoError(t, second.Save().Fire())
}
