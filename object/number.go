package object

import "strconv"

// Number is an unsigned 64-bit integer value. Arithmetic on numbers wraps
// on overflow.
type Number struct {
	value uint64
}

// NewNumber returns a Number containing the given value.
func NewNumber(value uint64) *Number {
	return &Number{value: value}
}

func (n *Number) Type() Type {
	return NUMBER
}

func (n *Number) Value() uint64 {
	return n.value
}

func (n *Number) Inspect() string {
	return strconv.FormatUint(n.value, 10)
}

func (n *Number) String() string {
	return n.Inspect()
}

func (n *Number) Interface() interface{} {
	return n.value
}

func (n *Number) Equals(other Object) bool {
	o, ok := other.(*Number)
	return ok && o.value == n.value
}
