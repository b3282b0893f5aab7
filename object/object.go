// Package object provides the runtime value types produced by evaluating
// script code.
//
// Callers will often type assert an object.Object to a specific type:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Number:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string
// name of the object type, such as "string" or "number".
package object

import "context"

// Type of an object as a string.
type Type string

// Type constants
const (
	BUILTIN   Type = "builtin"
	FUNCTION  Type = "function"
	HOST      Type = "host"
	NUMBER    Type = "number"
	STRING    Type = "string"
	UNDEFINED Type = "undefined"
)

// Object is the interface that all runtime value types must implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object is equal to this object.
	Equals(other Object) bool
}

// Attributes is the capability interface for objects that expose named
// members. The interpreter resolves member expressions through it and knows
// nothing else about the host object model.
type Attributes interface {
	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)
}

// Callable is an interface for objects that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}
