package patch

import (
	"fmt"
	"slices"

	"github.com/rs/xid"
)

// MultiInputData is the ordered collection backing a multi-input
// connector. Entries keep insertion order, every entry is addressed by an
// id that is unique for the life of the collection and never reused, so a
// stale id from a removed connection can not alias a new entry.
type MultiInputData struct {
	ids  []string
	data []any
}

// NewMultiInputData creates an empty collection.
func NewMultiInputData() *MultiInputData {
	return &MultiInputData{}
}

// Add appends a value and returns the id under which it is stored.
func (d *MultiInputData) Add(value any) string {
	id := xid.New().String()
	d.ids = append(d.ids, id)
	d.data = append(d.data, value)
	return id
}

// Remove drops the entry stored under id.
func (d *MultiInputData) Remove(id string) error {
	i := slices.Index(d.ids, id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrUnknownID)
	}
	d.ids = slices.Delete(d.ids, i, i+1)
	d.data = slices.Delete(d.data, i, i+1)
	return nil
}

// Replace swaps the value stored under id, keeping its position. This
// differs from Remove followed by Add, which would move the value to the
// end of the collection.
func (d *MultiInputData) Replace(id string, value any) error {
	i := slices.Index(d.ids, id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrUnknownID)
	}
	d.data[i] = value
	return nil
}

// Clear removes all entries.
func (d *MultiInputData) Clear() {
	d.ids = nil
	d.data = nil
}

// Data returns the values in insertion order.
func (d *MultiInputData) Data() []any {
	return append([]any(nil), d.data...)
}

// Len returns the number of entries.
func (d *MultiInputData) Len() int {
	return len(d.data)
}
