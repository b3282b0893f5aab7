package object

// Undefined is the absent value: the result of a statement, a call that
// returns nothing, or a variable declared without an initializer.
type Undefined struct{}

// UndefinedValue is the shared undefined singleton.
var UndefinedValue = &Undefined{}

func (u *Undefined) Type() Type {
	return UNDEFINED
}

func (u *Undefined) Inspect() string {
	return "undefined"
}

func (u *Undefined) String() string {
	return "undefined"
}

func (u *Undefined) Interface() interface{} {
	return nil
}

func (u *Undefined) Equals(other Object) bool {
	_, ok := other.(*Undefined)
	return ok
}
