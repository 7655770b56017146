// Package wav provides processing objects reading and writing wav files.
package wav

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
var ErrUnsupportedBitDepth = errors.New("only 16 and 32 bit depth is supported")

const wavFormat = 1

// Sink writes its signal to a wav file whenever Save fires.
type Sink struct {
	conns *patch.Connectors

	path       string
	bitDepth   signal.BitDepth
	sampleRate int
	buffer     signal.Float64

	setSignal     *patch.InputProxy
	setSampleRate *patch.InputProxy
	save          *patch.TriggerProxy
}

// NewSink binds a wav sink to the graph.
func NewSink(g *patch.Graph, path string, bitDepth signal.BitDepth) (*Sink, error) {
	if bitDepth != signal.BitDepth16 && bitDepth != signal.BitDepth32 {
		return nil, ErrUnsupportedBitDepth
	}
	s := &Sink{
		path:       path,
		bitDepth:   bitDepth,
		sampleRate: 44100,
	}
	c := g.Bind(s)
	s.setSignal = c.Input("SetSignal", patch.TypeOf[signal.Float64](), s.setSignalFn)
	s.setSampleRate = c.Input("SetSampleRate", patch.TypeOf[int](), s.setSampleRateFn)
	s.save = c.Trigger("Save", s.saveFn)
	s.conns = c
	return s, nil
}

// Connectors makes the sink patchable.
func (s *Sink) Connectors() *patch.Connectors { return s.conns }

// SetSignal feeds the signal to write.
func (s *Sink) SetSignal() *patch.InputProxy { return s.setSignal }

// SetSampleRate sets the sample rate stored in the file header.
func (s *Sink) SetSampleRate() *patch.InputProxy { return s.setSampleRate }

// Save writes the current signal to the file.
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
	e := wav.NewEncoder(f, s.sampleRate, int(s.bitDepth), s.buffer.NumChannels(), wavFormat)
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: s.buffer.NumChannels(),
			SampleRate:  s.sampleRate,
		},
		SourceBitDepth: int(s.bitDepth),
		Data:           s.buffer.AsInterInt(s.bitDepth),
	}
	if err := e.Write(ib); err != nil {
		f.Close()
		return err
	}
	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Source exposes the content of a wav file as a signal. The file is read
// on the first pull and cached afterwards.
type Source struct {
	conns *patch.Connectors

	path       string
	loaded     bool
	buffer     signal.Float64
	sampleRate int

	out     *patch.OutputProxy
	rateOut *patch.OutputProxy
}

// NewSource binds a wav source to the graph.
func NewSource(g *patch.Graph, path string) *Source {
	s := &Source{path: path}
	c := g.Bind(s)
	s.out = c.Output("Signal", patch.TypeOf[signal.Float64](), s.getSignal)
	s.rateOut = c.Output("SampleRate", patch.TypeOf[int](), s.getSampleRate)
	s.conns = c
	return s
}

// Connectors makes the source patchable.
func (s *Source) Connectors() *patch.Connectors { return s.conns }

// Signal is the file content as a non-interleaved float signal.
func (s *Source) Signal() *patch.OutputProxy { return s.out }

// SampleRate is the sample rate read from the file header.
func (s *Source) SampleRate() *patch.OutputProxy { return s.rateOut }

func (s *Source) getSignal() (any, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.buffer, nil
}

func (s *Source) getSampleRate() (any, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.sampleRate, nil
}

func (s *Source) load() error {
	if s.loaded {
		return nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return fmt.Errorf("%s is not a valid wav file", s.path)
	}
	if signal.BitDepth(d.BitDepth) != signal.BitDepth16 && signal.BitDepth(d.BitDepth) != signal.BitDepth32 {
		return ErrUnsupportedBitDepth
	}
	ib, err := d.FullPCMBuffer()
	if err != nil {
		return err
	}
	s.buffer = signal.InterInt{
		Data:        ib.Data,
		NumChannels: ib.Format.NumChannels,
		BitDepth:    signal.BitDepth(d.BitDepth),
	}.AsFloat64()
	s.sampleRate = int(d.SampleRate)
	s.loaded = true
	return nil
}
