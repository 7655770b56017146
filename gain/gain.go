// Package gain provides an amplifying processing object.
package gain

import (
	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// Gain multiplies every sample of its input signal by a factor.
type Gain struct {
	conns *patch.Connectors

	input  signal.Float64
	factor float64

	out       *patch.OutputProxy
	setSignal *patch.InputProxy
	setFactor *patch.InputProxy
}

// New binds a gain stage with factor 1 to the graph.
func New(g *patch.Graph) *Gain {
	gn := &Gain{factor: 1}
	c := g.Bind(gn)
	gn.out = c.Output("Signal", patch.TypeOf[signal.Float64](), gn.amplify)
	gn.setSignal = c.Input("SetSignal", patch.TypeOf[signal.Float64](), gn.setSignalFn, "Signal")
	gn.setFactor = c.Input("SetFactor", patch.TypeOf[float64](), gn.setFactorFn, "Signal")
	gn.conns = c
	return gn
}

// Connectors makes the gain stage patchable.
func (gn *Gain) Connectors() *patch.Connectors { return gn.conns }

// Signal is the amplified signal.
func (gn *Gain) Signal() *patch.OutputProxy { return gn.out }

// SetSignal feeds the signal to amplify.
func (gn *Gain) SetSignal() *patch.InputProxy { return gn.setSignal }

// SetFactor sets the amplification factor.
func (gn *Gain) SetFactor() *patch.InputProxy { return gn.setFactor }

func (gn *Gain) amplify() (any, error) {
	out := signal.EmptyFloat64(gn.input.NumChannels(), gn.input.Size())
	for i := range gn.input {
		for j, sample := range gn.input[i] {
			out[i][j] = sample * gn.factor
		}
	}
	return out, nil
}

func (gn *Gain) setSignalFn(value any) error {
	gn.input = value.(signal.Float64)
	return nil
}

func (gn *Gain) setFactorFn(value any) error {
	gn.factor = value.(float64)
	return nil
}
