package patch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeMismatch is returned by Connect when the declared types of source
// and sink are incompatible, and by setters when a value does not match the
// connector's declared type.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrUnknownConnector is returned when a proxy no longer maps to a live
// connector instance, e.g. after its owner has been released.
var ErrUnknownConnector = errors.New("unknown connector")

// ErrAlreadyConnected is returned by Connect if the edge exists.
var ErrAlreadyConnected = errors.New("already connected")

// ErrFeedbackLoop is returned by Connect when the sink input lists the
// source output as a dependent, which would recurse forever.
var ErrFeedbackLoop = errors.New("connection causes a feedback loop")

// ErrNoReplace is returned by MultiInput.Replace if no replace operation
// was declared for the connector.
var ErrNoReplace = errors.New("replace operation not declared")

// ErrUnknownID is returned by MultiInputData for ids that are not present
// in the collection.
var ErrUnknownID = errors.New("unknown multi-input id")

// PropagationError is returned when a connector body fails during a
// cascade. Pushes completed before the failure are not rolled back.
type PropagationError struct {
	Connector string
	Err       error
}

func (e *PropagationError) Error() string {
	return fmt.Sprintf("propagation aborted at %s: %v", e.Connector, e.Err)
}

func (e *PropagationError) Unwrap() error {
	return e.Err
}

// disconnectErrors wraps errors that might occur when multiple edges are
// torn down at once.
type disconnectErrors []error

func (e disconnectErrors) Error() string {
	s := []string{}
	for _, se := range e {
		s = append(s, se.Error())
	}
	return strings.Join(s, ",")
}

func (e disconnectErrors) Is(err error) bool {
	for _, se := range e {
		if errors.Is(se, err) {
			return true
		}
	}
	return false
}

// ret returns untyped nil if the error list is empty.
func (e disconnectErrors) ret() error {
	if len(e) > 0 {
		return e
	}
	return nil
}
