// Package portaudio provides a processing object playing audio through the
// default output device.
package portaudio

import (
	"github.com/gordonklaus/portaudio"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// Player plays its signal through the default audio device when Play fires.
type Player struct {
	conns *patch.Connectors

	sampleRate int
	bufferSize int
	buffer     signal.Float64

	setSignal     *patch.InputProxy
	setSampleRate *patch.InputProxy
	play          *patch.TriggerProxy
}

// NewPlayer binds a player to the graph.
func NewPlayer(g *patch.Graph) *Player {
	p := &Player{
		sampleRate: 44100,
		bufferSize: 512,
	}
	c := g.Bind(p)
	p.setSignal = c.Input("SetSignal", patch.TypeOf[signal.Float64](), p.setSignalFn)
	p.setSampleRate = c.Input("SetSampleRate", patch.TypeOf[int](), p.setSampleRateFn)
	p.play = c.Trigger("Play", p.playFn)
	p.conns = c
	return p
}

// Connectors makes the player patchable.
func (p *Player) Connectors() *patch.Connectors { return p.conns }

// SetSignal feeds the signal to play.
func (p *Player) SetSignal() *patch.InputProxy { return p.setSignal }

// SetSampleRate sets the playback sample rate.
func (p *Player) SetSampleRate() *patch.InputProxy { return p.setSampleRate }

// Play plays the current signal and blocks until playback finishes.
func (p *Player) Play() *patch.TriggerProxy { return p.play }

func (p *Player) setSignalFn(value any) error {
	p.buffer = value.(signal.Float64)
	return nil
}

func (p *Player) setSampleRateFn(value any) error {
	p.sampleRate = value.(int)
	return nil
}

func (p *Player) playFn() error {
	numChannels := p.buffer.NumChannels()
	if numChannels == 0 {
		return nil
	}
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	buf := make([]float32, p.bufferSize*numChannels)
	stream, err := portaudio.OpenDefaultStream(0, numChannels, float64(p.sampleRate), p.bufferSize, &buf)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err = stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	for pos := 0; pos < p.buffer.Size(); pos += p.bufferSize {
		for i := 0; i < p.bufferSize; i++ {
			for j := 0; j < numChannels; j++ {
				if pos+i < p.buffer.Size() {
					buf[i*numChannels+j] = float32(p.buffer[j][pos+i])
				} else {
					buf[i*numChannels+j] = 0
				}
			}
		}
		if err = stream.Write(); err != nil {
			break
		}
	}
	stream.Stop()
	stream.Close()
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
