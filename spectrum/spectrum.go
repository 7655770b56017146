// Package spectrum provides a processing object computing the magnitude
// spectrum of a signal.
package spectrum

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// Analyzer computes the magnitude spectrum of the first channel of its
// input signal.
type Analyzer struct {
	conns *patch.Connectors

	input signal.Float64

	magnitude *patch.OutputProxy
	setSignal *patch.InputProxy
}

// New binds an analyzer to the graph.
func New(g *patch.Graph) *Analyzer {
	a := &Analyzer{}
	c := g.Bind(a)
	a.magnitude = c.Output("Magnitude", patch.TypeOf[[]float64](), a.analyze)
	a.setSignal = c.Input("SetSignal", patch.TypeOf[signal.Float64](), a.setSignalFn, "Magnitude")
	a.conns = c
	return a
}

// Connectors makes the analyzer patchable.
func (a *Analyzer) Connectors() *patch.Connectors { return a.conns }

// Magnitude holds one magnitude per FFT bin, DC first.
func (a *Analyzer) Magnitude() *patch.OutputProxy { return a.magnitude }

// SetSignal feeds the signal to analyze.
func (a *Analyzer) SetSignal() *patch.InputProxy { return a.setSignal }

func (a *Analyzer) analyze() (any, error) {
	if a.input.Size() == 0 {
		return []float64{}, nil
	}
	bins := fft.FFTReal(a.input[0])
	magnitudes := make([]float64, len(bins)/2+1)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(bins[i]) / float64(len(bins))
	}
	return magnitudes, nil
}

func (a *Analyzer) setSignalFn(value any) error {
	a.input = value.(signal.Float64)
	return nil
}
