package example

import (
	"os"
	"path/filepath"

	"github.com/dudk/patch"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/merge"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/wav"
)

// Example 2:
//		Generate two sine tones
//		Merge them into a stereo signal
//		Save result into .wav file
func two() {
	outPath := filepath.Join(os.TempDir(), "example2.wav")

	g := patch.New()
	left := generator.NewSine(g)
	right := generator.NewSine(g)
	merger := merge.New(g)
	wavSink, err := wav.NewSink(g, outPath, signal.BitDepth16)
	check(err)

	check(patch.Connect(left.Signal(), merger.AddSignal()))
	check(patch.Connect(right.Signal(), merger.AddSignal()))
	check(patch.Connect(merger.Signal(), wavSink.SetSignal()))

	check(left.SetFrequency().Set(440.0))
	check(right.SetFrequency().Set(660.0))
	check(wavSink.Save().Fire())
}
