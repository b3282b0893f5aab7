package object

import "context"

// BuiltinFunction holds the Go implementation of a builtin.
type BuiltinFunction func(ctx context.Context, args ...Object) (Object, error)

// Builtin wraps a Go function so it can be called from script code. Host
// objects typically expose their methods as Builtins.
type Builtin struct {
	name string
	fn   BuiltinFunction
}

// NewBuiltin returns a Builtin with the given name and implementation.
func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{name: name, fn: fn}
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

// Name returns the name of the builtin.
func (b *Builtin) Name() string {
	return b.name
}

// Call invokes the wrapped Go function.
func (b *Builtin) Call(ctx context.Context, args ...Object) (Object, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Inspect() string {
	return "builtin(" + b.name + ")"
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Interface() interface{} {
	return nil
}

func (b *Builtin) Equals(other Object) bool {
	o, ok := other.(*Builtin)
	return ok && o == b
}
