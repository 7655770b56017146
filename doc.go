/*
Package patch connects processing objects into reactive dataflow graphs.

Concept

This package offers an opinionated perspective to signal processing
toolkits. It's based on the idea that a processing object exposes its
operations as typed connectors:

    Input - a single-value setter;
    Output - a cached, recomputable getter;
    MultiInput - a collection setter fed by many sources;
    Trigger - a side effect without a value;

Connecting an output to an input makes every change on the producing side
propagate to the consuming side automatically, so a processing chain keeps
itself consistent without explicit recomputation calls.

Objects and binding

Processing objects are plain structs. They declare their connectors by
binding to a graph:

    s := &Sine{}
    c := g.Bind(s)
    s.signal = c.Output("Signal", patch.TypeOf[signal.Float64](), s.generate)
    s.setFrequency = c.Input("SetFrequency", patch.TypeOf[float64](), s.setFrequencyFn, "Signal")

The trailing names of an input declaration list the outputs it observes:
firing the input invalidates those outputs and pushes their fresh values
downstream. Declarations return proxies, which are the only handles other
code uses to read, write and connect the object.

Propagation

Outputs cache their value by default. While nothing is connected, reads
are lazy: the output body runs only when the cache is stale. As soon as a
consumer is connected, changes propagate eagerly and depth-first, one
output at a time in declaration order. Propagation is synchronous and
single-threaded: the call that fires an input returns only after the whole
downstream cascade has settled. Concurrent use of one graph must be
serialized by the caller.

Lifetime

Connections never keep objects alive. When a connected object becomes
unreachable, its edges are severed and the rest of the graph keeps
working. Release tears an object down deterministically and runs its
Delete hook, if it has one.
*/
package patch
