// Package merge provides a processing object stacking several signals
// into one multi-channel signal.
package merge

import (
	"github.com/dudk/patch"
	"github.com/dudk/patch/signal"
)

// Merger collects signals from any number of sources and exposes them as
// one signal whose channels follow the insertion order of the inputs.
type Merger struct {
	conns *patch.Connectors

	data *patch.MultiInputData

	out *patch.OutputProxy
	add *patch.MultiInputProxy
}

// New binds an empty merger to the graph.
func New(g *patch.Graph) *Merger {
	m := &Merger{data: patch.NewMultiInputData()}
	c := g.Bind(m)
	m.out = c.Output("Signal", patch.TypeOf[signal.Float64](), m.merge)
	m.add = c.MultiInput("AddSignal", patch.TypeOf[signal.Float64](), patch.MultiFuncs{
		Add:     m.addFn,
		Remove:  m.removeFn,
		Replace: m.replaceFn,
	}, "Signal")
	m.conns = c
	return m
}

// Connectors makes the merger patchable.
func (m *Merger) Connectors() *patch.Connectors { return m.conns }

// Signal is the merged multi-channel signal.
func (m *Merger) Signal() *patch.OutputProxy { return m.out }

// AddSignal collects one more signal to merge.
func (m *Merger) AddSignal() *patch.MultiInputProxy { return m.add }

func (m *Merger) merge() (any, error) {
	var merged signal.Float64
	for _, value := range m.data.Data() {
		merged = merged.Merge(value.(signal.Float64))
	}
	return merged, nil
}

func (m *Merger) addFn(value any) (string, error) {
	return m.data.Add(value), nil
}

func (m *Merger) removeFn(id string) error {
	return m.data.Remove(id)
}

func (m *Merger) replaceFn(id string, value any) error {
	return m.data.Replace(id, value)
}
