package example

import (
	"os"
	"path/filepath"

	"github.com/dudk/patch"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/spectrum"
	"github.com/dudk/patch/wav"
)

// Example 3:
//		Generate a sine tone and save it into .wav file
//		Read the file back
//		Compute its magnitude spectrum
func three() []float64 {
	path := filepath.Join(os.TempDir(), "example3.wav")

	g := patch.New()
	sine := generator.NewSine(g)
	wavSink, err := wav.NewSink(g, path, signal.BitDepth16)
	check(err)
	check(patch.Connect(sine.Signal(), wavSink.SetSignal()))
	check(sine.SetLength().Set(4096))
	check(wavSink.Save().Fire())

	wavSource := wav.NewSource(g, path)
	analyzer := spectrum.New(g)
	// pull once so connecting pushes the loaded file downstream
	_, err = wavSource.Signal().Get()
	check(err)
	check(patch.Connect(wavSource.Signal(), analyzer.SetSignal()))

	value, err := analyzer.Magnitude().Get()
	check(err)
	return value.([]float64)
}
