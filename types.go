package patch

import (
	"reflect"
	"strings"
)

// ConnType is the declared type of a connector. It holds one or more
// acceptable types; the zero value is the wildcard and matches anything.
type ConnType struct {
	types []reflect.Type
}

// Any is the wildcard type, used by generic pass-through connectors.
var Any = ConnType{}

// TypeOf returns the ConnType for a single Go type.
func TypeOf[T any]() ConnType {
	return ConnType{types: []reflect.Type{reflect.TypeFor[T]()}}
}

// Union combines several ConnTypes into one that accepts all of them.
// A wildcard member makes the whole union a wildcard.
func Union(types ...ConnType) ConnType {
	var u ConnType
	for _, t := range types {
		if t.Wildcard() {
			return Any
		}
		u.types = append(u.types, t.types...)
	}
	return u
}

// Wildcard returns true if the type matches anything.
func (t ConnType) Wildcard() bool {
	return len(t.types) == 0
}

func (t ConnType) String() string {
	if t.Wildcard() {
		return "any"
	}
	names := make([]string, len(t.types))
	for i, rt := range t.types {
		names[i] = rt.String()
	}
	return strings.Join(names, "|")
}

// CompatibleWith reports whether values of type t can flow into a sink
// declared with the given type. Every type the source may produce must be
// assignable to at least one type the sink accepts.
func (t ConnType) CompatibleWith(sink ConnType) bool {
	if t.Wildcard() || sink.Wildcard() {
		return true
	}
	for _, src := range t.types {
		if !assignableToAny(src, sink.types) {
			return false
		}
	}
	return true
}

// accepts reports whether a concrete value may pass through this connector.
func (t ConnType) accepts(value any) bool {
	if t.Wildcard() {
		return true
	}
	rt := reflect.TypeOf(value)
	if rt == nil {
		// untyped nil is accepted for any interface or nilable declared type
		for _, dst := range t.types {
			switch dst.Kind() {
			case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
				return true
			}
		}
		return false
	}
	return assignableToAny(rt, t.types)
}

func assignableToAny(src reflect.Type, dst []reflect.Type) bool {
	for _, d := range dst {
		if src.AssignableTo(d) {
			return true
		}
	}
	return false
}
