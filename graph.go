package patch

import (
	"fmt"
	"runtime"
	"slices"
	"sync"
	"weak"

	"github.com/sirupsen/logrus"

	"github.com/dudk/patch/log"
)

// Graph is the connection graph shared by a set of processing objects. It
// owns no objects: connector instances are reachable from the graph only
// through weak references, so dropping an object makes it and its
// connectors collectible regardless of remaining edges. Edges to collected
// connectors are pruned lazily.
//
// A Graph must not be shared between goroutines without external
// serialization.
type Graph struct {
	caching bool
	logger  *logrus.Logger

	// arena of live connectors keyed by handle. mu guards only index and
	// dead: runtime cleanups report collected connectors from the GC's
	// goroutine, everything else is single-threaded.
	mu    sync.Mutex
	index map[string]weak.Pointer[connector]
	dead  map[string]struct{}
}

// Option configures a graph.
type Option func(*Graph)

// WithLogger sets the logger used for connection and propagation events.
func WithLogger(l *logrus.Logger) Option {
	return func(g *Graph) {
		g.logger = l
	}
}

// WithDefaultCaching sets whether outputs cache their values unless
// declared otherwise.
func WithDefaultCaching(enabled bool) Option {
	return func(g *Graph) {
		g.caching = enabled
	}
}

// New creates an empty connection graph.
func New(options ...Option) *Graph {
	g := &Graph{
		caching: true,
		index:   make(map[string]weak.Pointer[connector]),
		dead:    make(map[string]struct{}),
	}
	for _, option := range options {
		option(g)
	}
	if g.logger == nil {
		g.logger = log.GetLogger()
	}
	return g
}

// register puts a new connector into the arena and arranges for its edges
// to be severed once the owner becomes unreachable.
func (g *Graph) register(c *connector) {
	g.mu.Lock()
	g.index[c.id] = weak.Make(c)
	g.mu.Unlock()
	runtime.AddCleanup(c, g.reap, c.id)
}

// reap runs on the runtime's cleanup goroutine after a connector was
// collected. It only records the handle, pruning happens lazily on the
// caller's goroutine.
func (g *Graph) reap(id string) {
	g.mu.Lock()
	delete(g.index, id)
	g.dead[id] = struct{}{}
	g.mu.Unlock()
}

// lookup resolves an arena handle to a live connector, nil if the owner
// was collected or released.
func (g *Graph) lookup(id string) *connector {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.index[id]
	if !ok {
		return nil
	}
	c := p.Value()
	if c == nil || c.set.released {
		return nil
	}
	return c
}

// forget removes a released connector from the arena.
func (g *Graph) forget(id string) {
	g.mu.Lock()
	delete(g.index, id)
	g.mu.Unlock()
}

// Connect establishes a directed edge from an output to a sink. If the
// output holds a valid cached value, that value is pushed to the new sink
// once, so late-connecting consumers start consistent with the producer.
// Triggers are not fired by connecting.
func Connect(source *OutputProxy, sink SinkProxy) error {
	src, err := source.live()
	if err != nil {
		return err
	}
	snk, err := sink.live()
	if err != nil {
		return err
	}
	g := src.set.g
	if snk.set.g != g {
		return fmt.Errorf("connect %s to %s: connectors belong to different graphs", src.path(), snk.path())
	}
	if slices.Contains(src.downstream, snk.id) {
		return fmt.Errorf("%s to %s: %w", src.path(), snk.path(), ErrAlreadyConnected)
	}
	if snk.set == src.set && slices.Contains(snk.observes, src.name) {
		return fmt.Errorf("%s to %s: %w", src.path(), snk.path(), ErrFeedbackLoop)
	}
	if snk.kind != Trigger && !src.typ.CompatibleWith(snk.typ) {
		return fmt.Errorf("%s (%s) to %s (%s): %w", src.path(), src.typ, snk.path(), snk.typ, ErrTypeMismatch)
	}

	src.downstream = append(src.downstream, snk.id)
	snk.upstream = append(snk.upstream, src.id)
	if snk.kind == MultiInput {
		snk.sources[src.id] = ""
	}
	g.logger.Debugf("connect %s -> %s", src.path(), snk.path())

	if src.caching && src.valid && !src.deactivated && snk.kind != Trigger {
		return g.deliver(src, snk, src.cached)
	}
	return nil
}

// Disconnect removes the edge between an output and a sink. Removing an
// edge that does not exist is not an error.
func Disconnect(source *OutputProxy, sink SinkProxy) error {
	src, err := source.live()
	if err != nil {
		return err
	}
	snk, err := sink.live()
	if err != nil {
		return err
	}
	return src.set.g.disconnect(src, snk)
}

func (g *Graph) disconnect(src, snk *connector) error {
	i := slices.Index(src.downstream, snk.id)
	if i < 0 {
		return nil
	}
	src.downstream = slices.Delete(src.downstream, i, i+1)
	if j := slices.Index(snk.upstream, src.id); j >= 0 {
		snk.upstream = slices.Delete(snk.upstream, j, j+1)
	}
	g.logger.Debugf("disconnect %s -> %s", src.path(), snk.path())

	if snk.kind != MultiInput {
		return nil
	}
	// drop the entry this source had pushed and let downstream know
	dataID, ok := snk.sources[src.id]
	delete(snk.sources, src.id)
	if !ok || dataID == "" {
		return nil
	}
	if err := snk.removeFn(dataID); err != nil {
		return &PropagationError{Connector: snk.path(), Err: err}
	}
	return g.cascade(snk)
}

// DisconnectAll removes every edge touching the object, leaving it fully
// detached from the graph. The object can be a Patchable or a *Connectors.
func DisconnectAll(obj any) error {
	cs, err := asConnectors(obj)
	if err != nil {
		return err
	}
	g := cs.g
	errs := disconnectErrors{}
	cs.each(func(c *connector) {
		for _, id := range slices.Clone(c.downstream) {
			snk := g.lookup(id)
			if snk == nil {
				continue
			}
			if err := g.disconnect(c, snk); err != nil {
				errs = append(errs, err)
			}
		}
		for _, id := range slices.Clone(c.upstream) {
			src := g.lookup(id)
			if src == nil {
				continue
			}
			if err := g.disconnect(src, c); err != nil {
				errs = append(errs, err)
			}
		}
		c.downstream = nil
		c.upstream = nil
	})
	return errs.ret()
}

// Release tears an object down deterministically: its Delete hook runs
// first, then every edge touching it is severed and its connectors are
// removed from the graph. Proxies of a released object no longer resolve.
func Release(obj any) error {
	cs, err := asConnectors(obj)
	if err != nil {
		return err
	}
	if d, ok := cs.owner.(Deleter); ok {
		d.Delete()
	}
	errDisconnect := DisconnectAll(cs)
	cs.each(func(c *connector) {
		cs.g.forget(c.id)
	})
	cs.released = true
	return errDisconnect
}

// DeactivateOutputs suppresses pushes from all outputs of the object.
// Their consumers keep the last pushed value until ActivateOutputs.
func DeactivateOutputs(obj any) error {
	cs, err := asConnectors(obj)
	if err != nil {
		return err
	}
	for _, out := range cs.outputs() {
		out.deactivated = true
	}
	return nil
}

// ActivateOutputs re-enables pushes from the object's outputs. Every output
// that changed while deactivated pushes its fresh value once.
func ActivateOutputs(obj any) error {
	cs, err := asConnectors(obj)
	if err != nil {
		return err
	}
	for _, out := range cs.outputs() {
		out.deactivated = false
		if !out.changed {
			continue
		}
		out.changed = false
		if len(out.downstream) == 0 {
			continue
		}
		value, err := out.compute()
		if err != nil {
			return &PropagationError{Connector: out.path(), Err: err}
		}
		if err := cs.g.push(out, value); err != nil {
			return err
		}
	}
	return nil
}

func asConnectors(obj any) (*Connectors, error) {
	var cs *Connectors
	switch o := obj.(type) {
	case *Connectors:
		cs = o
	case Patchable:
		cs = o.Connectors()
	default:
		return nil, fmt.Errorf("%T exposes no connectors: %w", obj, ErrUnknownConnector)
	}
	if cs == nil || cs.released {
		return nil, fmt.Errorf("connector set gone: %w", ErrUnknownConnector)
	}
	return cs, nil
}
