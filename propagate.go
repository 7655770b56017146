package patch

import (
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// cascade runs after an input, multi-input or trigger body was executed.
// All dependent outputs are marked stale first, then each connected output
// recomputes and pushes in declaration order. Outputs without consumers
// stay stale until the next pull.
func (g *Graph) cascade(fired *connector) error {
	if len(fired.observes) == 0 {
		return nil
	}
	outs := make([]*connector, 0, len(fired.observes))
	for _, name := range fired.observes {
		outs = append(outs, fired.set.output(name))
	}
	for _, out := range outs {
		if out.caching {
			out.valid = false
		}
	}
	for _, out := range outs {
		if out.deactivated {
			out.changed = true
			continue
		}
		if len(out.downstream) == 0 {
			continue
		}
		value, err := out.compute()
		if err != nil {
			return &PropagationError{Connector: out.path(), Err: err}
		}
		if err := g.push(out, value); err != nil {
			return err
		}
	}
	return nil
}

// push sends a freshly computed output value along every downstream edge.
// Each edge settles its entire downstream chain before the next sibling
// edge is pushed. Edges to collected connectors are pruned on the way.
func (g *Graph) push(out *connector, value any) error {
	for _, id := range slices.Clone(out.downstream) {
		snk := g.lookup(id)
		if snk == nil {
			g.prune(out, id)
			continue
		}
		if !slices.Contains(out.downstream, id) {
			// a sibling chain disconnected this edge mid-cascade
			continue
		}
		if err := g.deliver(out, snk, value); err != nil {
			return err
		}
	}
	return nil
}

// deliver pushes one value across one edge and settles the sink's own
// cascade before returning.
func (g *Graph) deliver(src, snk *connector, value any) error {
	if g.logger.IsLevelEnabled(logrus.DebugLevel) {
		g.logger.Debugf("push %s -> %s: %s", src.path(), snk.path(), spew.Sprintf("%v", value))
	}
	switch snk.kind {
	case Input:
		if err := snk.checkValue(value); err != nil {
			return err
		}
		if err := snk.setFn(value); err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
	case MultiInput:
		if err := snk.checkValue(value); err != nil {
			return err
		}
		if err := g.routeMulti(src, snk, value); err != nil {
			return err
		}
	case Trigger:
		// triggers discard the value
		if err := snk.trigFn(); err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
	}
	return g.cascade(snk)
}

// routeMulti updates the multi-input entry belonging to this edge: add on
// the first push, replace afterwards, or remove and re-add when no replace
// body was declared.
func (g *Graph) routeMulti(src, snk *connector, value any) error {
	dataID := snk.sources[src.id]
	switch {
	case dataID == "":
		id, err := snk.addFn(value)
		if err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
		snk.sources[src.id] = id
	case snk.replaceFn != nil:
		if err := snk.replaceFn(dataID, value); err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
	default:
		if err := snk.removeFn(dataID); err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
		id, err := snk.addFn(value)
		if err != nil {
			return &PropagationError{Connector: snk.path(), Err: err}
		}
		snk.sources[src.id] = id
	}
	return nil
}

// prune drops an edge whose sink was garbage collected.
func (g *Graph) prune(out *connector, id string) {
	if i := slices.Index(out.downstream, id); i >= 0 {
		out.downstream = slices.Delete(out.downstream, i, i+1)
	}
	g.mu.Lock()
	delete(g.dead, id)
	g.mu.Unlock()
	g.logger.Debugf("prune %s -> collected connector", out.path())
}
