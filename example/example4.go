package example

import (
	"github.com/dudk/patch"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/portaudio"
)

// Example 4:
//		Generate a sine tone
//		Play it with portaudio
func four() {
	g := patch.New()
	sine := generator.NewSine(g)
	player := portaudio.NewPlayer(g)

	check(patch.Connect(sine.Signal(), player.SetSignal()))
	check(sine.SetLength().Set(22050))
	check(player.Play().Fire())
}
