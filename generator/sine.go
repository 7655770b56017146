// Package generator provides signal-producing processing objects.
package generator

import (
	"fmt"
	"math"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

const (
	defaultSampleRate = 44100
	defaultFrequency  = 440.0
)

// Sine produces a mono sine signal. Changing frequency, sample rate or
// length recomputes the Signal output of every connected consumer.
type Sine struct {
	conns *patch.Connectors

	frequency  float64
	sampleRate int
	length     int

	signal        *patch.OutputProxy
	setFrequency  *patch.InputProxy
	setSampleRate *patch.InputProxy
	setLength     *patch.InputProxy
}

// NewSine binds a sine generator to the graph. It starts with 440Hz at
// 44100Hz sample rate and one second of samples.
func NewSine(g *patch.Graph) *Sine {
	s := &Sine{
		frequency:  defaultFrequency,
		sampleRate: defaultSampleRate,
		length:     defaultSampleRate,
	}
	c := g.Bind(s)
	s.signal = c.Output("Signal", patch.TypeOf[signal.Float64](), s.generate)
	s.setFrequency = c.Input("SetFrequency", patch.TypeOf[float64](), s.setFrequencyFn, "Signal")
	s.setSampleRate = c.Input("SetSampleRate", patch.TypeOf[int](), s.setSampleRateFn, "Signal")
	s.setLength = c.Input("SetLength", patch.TypeOf[int](), s.setLengthFn, "Signal")
	s.conns = c
	return s
}

// Connectors makes the generator patchable.
func (s *Sine) Connectors() *patch.Connectors { return s.conns }

// Signal is the generated mono signal.
func (s *Sine) Signal() *patch.OutputProxy { return s.signal }

// SetFrequency sets the sine frequency in Hz.
func (s *Sine) SetFrequency() *patch.InputProxy { return s.setFrequency }

// SetSampleRate sets the sample rate in Hz.
func (s *Sine) SetSampleRate() *patch.InputProxy { return s.setSampleRate }

// SetLength sets the number of samples to generate.
func (s *Sine) SetLength() *patch.InputProxy { return s.setLength }

func (s *Sine) generate() (any, error) {
	samples := make([]float64, s.length)
	omega := 2 * math.Pi * s.frequency / float64(s.sampleRate)
	for i := range samples {
		samples[i] = math.Sin(omega * float64(i))
	}
	return signal.Mono(samples), nil
}

func (s *Sine) setFrequencyFn(value any) error {
	f := value.(float64)
	if f < 0 {
		return fmt.Errorf("negative frequency %v", f)
	}
	s.frequency = f
	return nil
}

func (s *Sine) setSampleRateFn(value any) error {
	sr := value.(int)
	if sr <= 0 {
		return fmt.Errorf("non-positive sample rate %v", sr)
	}
	s.sampleRate = sr
	return nil
}

func (s *Sine) setLengthFn(value any) error {
	l := value.(int)
	if l < 0 {
		return fmt.Errorf("negative length %v", l)
	}
	s.length = l
	return nil
}
