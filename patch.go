package patch

// Kind describes which operation a connector exposes.
type Kind uint8

const (
	// Input is a single-value setter.
	Input Kind = 1 + iota
	// Output is a getter, by default with a cached value.
	Output
	// MultiInput is an add-operation collecting values from many sources.
	MultiInput
	// Trigger is a setter without arguments.
	Trigger
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case MultiInput:
		return "multi-input"
	case Trigger:
		return "trigger"
	}
	return "unknown"
}

type (
	// SetFunc is the body of an input connector.
	SetFunc func(value any) error

	// GetFunc is the body of an output connector.
	GetFunc func() (any, error)

	// TriggerFunc is the body of a trigger connector.
	TriggerFunc func() error

	// AddFunc is the add-body of a multi-input connector. It returns the id
	// under which the value was stored.
	AddFunc func(value any) (string, error)

	// RemoveFunc reverts an AddFunc call for the given id.
	RemoveFunc func(id string) error

	// ReplaceFunc swaps the value stored under id, keeping its position.
	ReplaceFunc func(id string, value any) error
)

// MultiFuncs bundles the bodies of a multi-input connector. Add and Remove
// are mandatory, Replace is optional. Without Replace a repeated push along
// the same connection removes the old entry and re-adds the new value under
// a fresh id.
type MultiFuncs struct {
	Add     AddFunc
	Remove  RemoveFunc
	Replace ReplaceFunc
}

// Patchable is implemented by processing objects that expose their
// connector set. Package-level functions like DisconnectAll and Release
// accept either a Patchable or a *Connectors directly.
type Patchable interface {
	Connectors() *Connectors
}

// Deleter is the optional teardown hook convention. Release calls Delete
// before severing the object's connections.
type Deleter interface {
	Delete()
}
