// Package mock provides connector objects used to test the patch engine.
package mock

import (
	"fmt"

	"github.com/dudk/patch"
)

// Processor is a processing object exposing one connector of every kind.
// It records setter order and getter executions, so tests can assert on
// caching and cascade behaviour.
type Processor struct {
	conns *patch.Connectors

	val       int
	text      string
	triggered int
	deleted   bool
	calls     []string
	computed  int
	items     *patch.MultiInputData

	value    *patch.OutputProxy
	twice    *patch.OutputProxy
	textOut  *patch.OutputProxy
	itemsOut *patch.OutputProxy
	setValue *patch.InputProxy
	setBoth  *patch.InputProxy
	setQuiet *patch.InputProxy
	setText  *patch.InputProxy
	trigger  *patch.TriggerProxy
	addItem  *patch.MultiInputProxy
}

// NewProcessor binds a processor to the graph.
func NewProcessor(g *patch.Graph) *Processor {
	p := &Processor{items: patch.NewMultiInputData()}
	c := g.Bind(p)
	p.value = c.Output("Value", patch.TypeOf[int](), p.getValue)
	p.twice = c.Output("Twice", patch.TypeOf[int](), p.getTwice)
	p.textOut = c.Output("Text", patch.TypeOf[string](), p.getText, patch.NoCache())
	p.itemsOut = c.Output("Items", patch.TypeOf[[]any](), p.getItems)
	p.setValue = c.Input("SetValue", patch.TypeOf[int](), p.set("SetValue"), "Value")
	p.setBoth = c.Input("SetBoth", patch.TypeOf[int](), p.set("SetBoth"), "Value", "Twice")
	p.setQuiet = c.Input("SetQuiet", patch.TypeOf[int](), p.set("SetQuiet"))
	p.setText = c.Input("SetText", patch.TypeOf[string](), p.setTextFn, "Text")
	p.trigger = c.Trigger("Bang", p.bang)
	p.addItem = c.MultiInput("AddItem", patch.Any, patch.MultiFuncs{
		Add:     p.add,
		Remove:  p.remove,
		Replace: p.replace,
	}, "Items")
	p.conns = c
	return p
}

// Connectors makes the processor patchable.
func (p *Processor) Connectors() *patch.Connectors {
	return p.conns
}

// Delete records the teardown hook call.
func (p *Processor) Delete() {
	p.deleted = true
}

// connector accessors

// Value is a caching output returning the current value.
func (p *Processor) Value() *patch.OutputProxy { return p.value }

// Twice is a caching output returning the doubled value.
func (p *Processor) Twice() *patch.OutputProxy { return p.twice }

// Text is a non-caching output.
func (p *Processor) Text() *patch.OutputProxy { return p.textOut }

// Items is a caching output returning the multi-input collection.
func (p *Processor) Items() *patch.OutputProxy { return p.itemsOut }

// SetValue observes Value.
func (p *Processor) SetValue() *patch.InputProxy { return p.setValue }

// SetBoth observes Value and Twice.
func (p *Processor) SetBoth() *patch.InputProxy { return p.setBoth }

// SetQuiet observes nothing.
func (p *Processor) SetQuiet() *patch.InputProxy { return p.setQuiet }

// SetText feeds the Text output.
func (p *Processor) SetText() *patch.InputProxy { return p.setText }

// Bang is a trigger.
func (p *Processor) Bang() *patch.TriggerProxy { return p.trigger }

// AddItem is a wildcard multi-input with remove and replace bodies.
func (p *Processor) AddItem() *patch.MultiInputProxy { return p.addItem }

// state inspectors

// Val returns the current value.
func (p *Processor) Val() int { return p.val }

// Calls returns the order in which setters fired.
func (p *Processor) Calls() []string { return p.calls }

// Computed returns how often the Value body ran.
func (p *Processor) Computed() int { return p.computed }

// Triggered returns how often the trigger fired.
func (p *Processor) Triggered() int { return p.triggered }

// Deleted returns true after the teardown hook ran.
func (p *Processor) Deleted() bool { return p.deleted }

// ItemData returns the multi-input collection in insertion order.
func (p *Processor) ItemData() []any { return p.items.Data() }

// bodies

func (p *Processor) set(name string) patch.SetFunc {
	return func(value any) error {
		p.val = value.(int)
		p.calls = append(p.calls, name)
		return nil
	}
}

func (p *Processor) setTextFn(value any) error {
	p.text = value.(string)
	return nil
}

func (p *Processor) getValue() (any, error) {
	p.computed++
	return p.val, nil
}

func (p *Processor) getTwice() (any, error) {
	return 2 * p.val, nil
}

func (p *Processor) getText() (any, error) {
	return p.text, nil
}

func (p *Processor) getItems() (any, error) {
	return p.items.Data(), nil
}

func (p *Processor) bang() error {
	p.triggered++
	return nil
}

func (p *Processor) add(value any) (string, error) {
	return p.items.Add(value), nil
}

func (p *Processor) remove(id string) error {
	return p.items.Remove(id)
}

func (p *Processor) replace(id string, value any) error {
	return p.items.Replace(id, value)
}

// Failer is a processing object whose bodies can be told to fail, used to
// test cascade abort semantics.
type Failer struct {
	conns *patch.Connectors

	FailSet bool
	FailGet bool
	val     int
	sets    int

	out *patch.OutputProxy
	in  *patch.InputProxy
}

// NewFailer binds a failer to the graph.
func NewFailer(g *patch.Graph) *Failer {
	f := &Failer{}
	c := g.Bind(f)
	f.out = c.Output("Value", patch.TypeOf[int](), f.get)
	f.in = c.Input("SetValue", patch.TypeOf[int](), f.setFn, "Value")
	f.conns = c
	return f
}

// Connectors makes the failer patchable.
func (f *Failer) Connectors() *patch.Connectors { return f.conns }

// Value is the failer's output.
func (f *Failer) Value() *patch.OutputProxy { return f.out }

// SetValue is the failer's input.
func (f *Failer) SetValue() *patch.InputProxy { return f.in }

// Sets returns how often the setter body ran.
func (f *Failer) Sets() int { return f.sets }

func (f *Failer) setFn(value any) error {
	if f.FailSet {
		return fmt.Errorf("setter told to fail")
	}
	f.sets++
	f.val = value.(int)
	return nil
}

func (f *Failer) get() (any, error) {
	if f.FailGet {
		return nil, fmt.Errorf("getter told to fail")
	}
	return f.val, nil
}

// Recorder is a sink object capturing every value pushed into it.
type Recorder struct {
	conns *patch.Connectors

	received []any

	in *patch.InputProxy
}

// NewRecorder binds a recorder accepting values of the given type.
func NewRecorder(g *patch.Graph, typ patch.ConnType) *Recorder {
	r := &Recorder{}
	c := g.Bind(r)
	r.in = c.Input("Receive", typ, r.receive)
	r.conns = c
	return r
}

// Connectors makes the recorder patchable.
func (r *Recorder) Connectors() *patch.Connectors { return r.conns }

// Receive is the recorder's input.
func (r *Recorder) Receive() *patch.InputProxy { return r.in }

// Received returns all pushed values in order.
func (r *Recorder) Received() []any { return r.received }

func (r *Recorder) receive(value any) error {
	r.received = append(r.received, value)
	return nil
}
