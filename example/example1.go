package example

import (
	"os"
	"path/filepath"

	"github.com/dudk/patch"
	"github.com/dudk/patch/gain"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/wav"
)

// Example 1:
//		Generate a sine tone
//		Attenuate it with a gain stage
//		Save result into .wav file
func one() {
	outPath := filepath.Join(os.TempDir(), "example1.wav")

	g := patch.New()
	sine := generator.NewSine(g)
	gn := gain.New(g)
	wavSink, err := wav.NewSink(g, outPath, signal.BitDepth16)
	check(err)

	check(patch.Connect(sine.Signal(), gn.SetSignal()))
	check(patch.Connect(gn.Signal(), wavSink.SetSignal()))

	check(gn.SetFactor().Set(0.5))
	check(sine.SetFrequency().Set(220.0))
	check(wavSink.Save().Fire())
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
