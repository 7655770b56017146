package patch

import (
	"fmt"
	"reflect"

	"github.com/rs/xid"
)

// connector is the live instance behind one exposed operation. Instances
// live as long as their owner: the owner holds its Connectors set, the set
// holds the instances, and the graph arena keeps only weak references.
type connector struct {
	set  *Connectors
	id   string
	name string
	kind Kind
	typ  ConnType

	// names of sibling outputs invalidated when this connector fires,
	// in declaration order
	observes []string

	// output state
	caching     bool
	cached      any
	valid       bool
	deactivated bool
	changed     bool

	// bodies, one set per kind
	getFn     GetFunc
	setFn     SetFunc
	trigFn    TriggerFunc
	addFn     AddFunc
	removeFn  RemoveFunc
	replaceFn ReplaceFunc

	// edges, stored as arena handles so they never pin peer owners
	downstream []string
	upstream   []string

	// multi-input: source handle to the id its current entry is stored
	// under, empty until the first push along that edge
	sources map[string]string
}

// path returns OWNER.NAME for errors, logs and introspection.
func (c *connector) path() string {
	return c.set.name + "." + c.name
}

// compute runs the output body, refreshing the cache for caching outputs.
// A pull never propagates to the connector's own downstream.
func (c *connector) compute() (any, error) {
	if c.caching && c.valid {
		return c.cached, nil
	}
	value, err := c.getFn()
	if err != nil {
		return nil, err
	}
	if c.caching {
		c.cached = value
		c.valid = true
	}
	return value, nil
}

// checkValue guards connector bodies against values outside the declared
// type. Connections are validated at Connect time, this covers direct calls.
func (c *connector) checkValue(value any) error {
	if !c.typ.accepts(value) {
		return fmt.Errorf("%s rejects %T: %w", c.path(), value, ErrTypeMismatch)
	}
	return nil
}

// Connectors is the per-owner connector set. It is created with Graph.Bind
// and declares the owner's operations one by one. Declaration order defines
// the order in which dependent outputs are notified.
type Connectors struct {
	g        *Graph
	owner    any
	name     string
	names    []string
	byName   map[string]*connector
	released bool
}

// Bind creates the connector set for a processing object. The owner's type
// name becomes the prefix of all connector paths.
func (g *Graph) Bind(owner any) *Connectors {
	return &Connectors{
		g:      g,
		owner:  owner,
		name:   ownerName(owner),
		byName: make(map[string]*connector),
	}
}

func ownerName(owner any) string {
	t := reflect.TypeOf(owner)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "anonymous"
	}
	return t.Name()
}

func (cs *Connectors) declare(name string, kind Kind, typ ConnType) *connector {
	if _, ok := cs.byName[name]; ok {
		panic(fmt.Sprintf("patch: connector %s.%s declared twice", cs.name, name))
	}
	c := &connector{
		set:  cs,
		id:   xid.New().String(),
		name: name,
		kind: kind,
		typ:  typ,
	}
	cs.names = append(cs.names, name)
	cs.byName[name] = c
	cs.g.register(c)
	return c
}

// Input declares a setter operation. The observes list names sibling
// outputs whose cached values become stale when the setter fires.
func (cs *Connectors) Input(name string, typ ConnType, fn SetFunc, observes ...string) *InputProxy {
	c := cs.declare(name, Input, typ)
	c.setFn = fn
	c.observes = observes
	return &InputProxy{c: c}
}

// Output declares a getter operation, caching by default.
func (cs *Connectors) Output(name string, typ ConnType, fn GetFunc, options ...OutputOption) *OutputProxy {
	c := cs.declare(name, Output, typ)
	c.getFn = fn
	c.caching = cs.g.caching
	for _, option := range options {
		option(c)
	}
	return &OutputProxy{c: c}
}

// Trigger declares a setter operation without arguments.
func (cs *Connectors) Trigger(name string, fn TriggerFunc, observes ...string) *TriggerProxy {
	c := cs.declare(name, Trigger, Any)
	c.trigFn = fn
	c.observes = observes
	return &TriggerProxy{c: c}
}

// MultiInput declares an add-operation collecting values from many
// sources. fns.Add and fns.Remove are mandatory.
func (cs *Connectors) MultiInput(name string, typ ConnType, fns MultiFuncs, observes ...string) *MultiInputProxy {
	if fns.Add == nil || fns.Remove == nil {
		panic(fmt.Sprintf("patch: multi-input %s.%s needs add and remove bodies", cs.name, name))
	}
	c := cs.declare(name, MultiInput, typ)
	c.addFn = fns.Add
	c.removeFn = fns.Remove
	c.replaceFn = fns.Replace
	c.observes = observes
	c.sources = make(map[string]string)
	return &MultiInputProxy{c: c}
}

// OutputOption configures an output connector.
type OutputOption func(*connector)

// Caching sets whether the output caches its value. The graph-wide default
// is on unless configured otherwise.
func Caching(enabled bool) OutputOption {
	return func(c *connector) {
		c.caching = enabled
	}
}

// NoCache disables caching, the output body runs on every pull and push.
func NoCache() OutputOption {
	return Caching(false)
}

// output resolves one of the owner's dependent outputs by name. Listing a
// connector that is not a declared sibling output is a programming error.
func (cs *Connectors) output(name string) *connector {
	c, ok := cs.byName[name]
	if !ok {
		panic(fmt.Sprintf("patch: %s observes undeclared connector %q", cs.name, name))
	}
	if c.kind != Output {
		panic(fmt.Sprintf("patch: %s observes %q which is a %s, not an output", cs.name, name, c.kind))
	}
	return c
}

// outputs resolves all outputs of the set in declaration order.
func (cs *Connectors) outputs() []*connector {
	var outs []*connector
	for _, name := range cs.names {
		if c := cs.byName[name]; c.kind == Output {
			outs = append(outs, c)
		}
	}
	return outs
}

// each visits all connectors in declaration order.
func (cs *Connectors) each(fn func(*connector)) {
	for _, name := range cs.names {
		fn(cs.byName[name])
	}
}
