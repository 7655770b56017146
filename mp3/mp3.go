// Package mp3 provides a processing object writing mp3 files.
package mp3

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/viert/lame"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// Sink encodes its signal to an mp3 file whenever Save fires.
type Sink struct {
	conns *patch.Connectors

	path       string
	bitRate    int
	quality    int
	sampleRate int
	buffer     signal.Float64

	setSignal     *patch.InputProxy
	setSampleRate *patch.InputProxy
	save          *patch.TriggerProxy
}

// NewSink binds an mp3 sink to the graph.
func NewSink(g *patch.Graph, path string, bitRate, quality int) *Sink {
	s := &Sink{
		path:       path,
		bitRate:    bitRate,
		quality:    quality,
		sampleRate: 44100,
	}
	c := g.Bind(s)
	s.setSignal = c.Input("SetSignal", patch.TypeOf[signal.Float64](), s.setSignalFn)
	s.setSampleRate = c.Input("SetSampleRate", patch.TypeOf[int](), s.setSampleRateFn)
	s.save = c.Trigger("Save", s.saveFn)
	s.conns = c
	return s
}

// Connectors makes the sink patchable.
func (s *Sink) Connectors() *patch.Connectors { return s.conns }

// SetSignal feeds the signal to encode.
func (s *Sink) SetSignal() *patch.InputProxy { return s.setSignal }

// SetSampleRate sets the input sample rate for the encoder.
func (s *Sink) SetSampleRate() *patch.InputProxy { return s.setSampleRate }

// Save encodes the current signal to the file.
func (s *Sink) Save() *patch.TriggerProxy { return s.save }

func (s *Sink) setSignalFn(value any) error {
	s.buffer = value.(signal.Float64)
	return nil
}

func (s *Sink) setSampleRateFn(value any) error {
	s.sampleRate = value.(int)
	return nil
}

func (s *Sink) saveFn() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	wr := lame.NewWriter(f)
	wr.Encoder.SetBitrate(s.bitRate)
	wr.Encoder.SetQuality(s.quality)
	wr.Encoder.SetNumChannels(s.buffer.NumChannels())
	wr.Encoder.SetInSamplerate(s.sampleRate)
	wr.Encoder.SetMode(lame.JOINT_STEREO)
	wr.Encoder.SetVBR(lame.VBR_RH)
	wr.Encoder.InitParams()

	buf := new(bytes.Buffer)
	ints := s.buffer.AsInterInt(signal.BitDepth16)
	for i := range ints {
		if err := binary.Write(buf, binary.LittleEndian, int16(ints[i])); err != nil {
			f.Close()
			return err
		}
	}
	if _, err := wr.Write(buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	if err := wr.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
