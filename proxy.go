package patch

import "fmt"

// Proxies are the stable public tokens standing in for connector
// instances. They are handed out once at declaration time, compared by
// identity, and passed to Connect and Disconnect. A proxy outliving its
// released owner resolves to ErrUnknownConnector instead of dangling.

type (
	// OutputProxy is the handle of an output connector.
	OutputProxy struct {
		c *connector
	}

	// InputProxy is the handle of an input connector.
	InputProxy struct {
		c *connector
	}

	// MultiInputProxy is the handle of a multi-input connector.
	MultiInputProxy struct {
		c *connector
	}

	// TriggerProxy is the handle of a trigger connector.
	TriggerProxy struct {
		c *connector
	}

	// SinkProxy is any proxy that can terminate a connection: inputs,
	// multi-inputs and triggers.
	SinkProxy interface {
		live() (*connector, error)
	}
)

func live(c *connector) (*connector, error) {
	if c == nil || c.set.released {
		return nil, fmt.Errorf("proxy resolves to no live instance: %w", ErrUnknownConnector)
	}
	return c, nil
}

func (p *OutputProxy) live() (*connector, error)     { return live(p.c) }
func (p *InputProxy) live() (*connector, error)      { return live(p.c) }
func (p *MultiInputProxy) live() (*connector, error) { return live(p.c) }
func (p *TriggerProxy) live() (*connector, error)    { return live(p.c) }

// Get pulls the output's value, recomputing it only if a relevant input
// fired since the last computation. Pulling never propagates downstream.
func (p *OutputProxy) Get() (any, error) {
	c, err := p.live()
	if err != nil {
		return nil, err
	}
	return c.compute()
}

// Set fires the input with a value: the body runs first, then the cascade
// through every dependent output settles before Set returns.
func (p *InputProxy) Set(value any) error {
	c, err := p.live()
	if err != nil {
		return err
	}
	if err := c.checkValue(value); err != nil {
		return err
	}
	if err := c.setFn(value); err != nil {
		return err
	}
	return c.set.g.cascade(c)
}

// Fire invokes the trigger body and cascades.
func (p *TriggerProxy) Fire() error {
	c, err := p.live()
	if err != nil {
		return err
	}
	if err := c.trigFn(); err != nil {
		return err
	}
	return c.set.g.cascade(c)
}

// Add stores a value in the multi-input collection and cascades. The
// returned id reverts this call through Remove.
func (p *MultiInputProxy) Add(value any) (string, error) {
	c, err := p.live()
	if err != nil {
		return "", err
	}
	if err := c.checkValue(value); err != nil {
		return "", err
	}
	id, err := c.addFn(value)
	if err != nil {
		return "", err
	}
	return id, c.set.g.cascade(c)
}

// Remove drops the entry stored under id and cascades.
func (p *MultiInputProxy) Remove(id string) error {
	c, err := p.live()
	if err != nil {
		return err
	}
	if err := c.removeFn(id); err != nil {
		return err
	}
	return c.set.g.cascade(c)
}

// Replace swaps the entry stored under id in place and cascades. It fails
// with ErrNoReplace if the connector declared no replace body.
func (p *MultiInputProxy) Replace(id string, value any) error {
	c, err := p.live()
	if err != nil {
		return err
	}
	if c.replaceFn == nil {
		return fmt.Errorf("%s: %w", c.path(), ErrNoReplace)
	}
	if err := c.checkValue(value); err != nil {
		return err
	}
	if err := c.replaceFn(id, value); err != nil {
		return err
	}
	return c.set.g.cascade(c)
}

// introspection, used by tests and tooling

// Name returns the connector path in OWNER.NAME form.
func (p *OutputProxy) Name() string     { return p.c.path() }
func (p *InputProxy) Name() string      { return p.c.path() }
func (p *MultiInputProxy) Name() string { return p.c.path() }
func (p *TriggerProxy) Name() string    { return p.c.path() }

// Type returns the declared value type.
func (p *OutputProxy) Type() ConnType     { return p.c.typ }
func (p *InputProxy) Type() ConnType      { return p.c.typ }
func (p *MultiInputProxy) Type() ConnType { return p.c.typ }

// Observers returns the names of the sibling outputs this connector
// invalidates, in declaration order.
func (p *InputProxy) Observers() []string      { return append([]string(nil), p.c.observes...) }
func (p *MultiInputProxy) Observers() []string { return append([]string(nil), p.c.observes...) }
func (p *TriggerProxy) Observers() []string    { return append([]string(nil), p.c.observes...) }

// Connections returns the paths of the sinks currently fed by this output.
func (p *OutputProxy) Connections() []string {
	return p.c.peers(p.c.downstream)
}

// Connections returns the paths of the sources currently feeding this sink.
func (p *InputProxy) Connections() []string      { return p.c.peers(p.c.upstream) }
func (p *MultiInputProxy) Connections() []string { return p.c.peers(p.c.upstream) }
func (p *TriggerProxy) Connections() []string    { return p.c.peers(p.c.upstream) }

func (c *connector) peers(ids []string) []string {
	var names []string
	for _, id := range ids {
		if peer := c.set.g.lookup(id); peer != nil {
			names = append(names, peer.path())
		}
	}
	return names
}
