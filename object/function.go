package object

import (
	"strings"

	"github.com/momiji-web/momiji/ast"
)

// Function is a function declared in script code. It records the declared
// parameter names and the body block; invocation is performed by the
// interpreter, which binds parameters into a fresh call frame.
type Function struct {
	name   string
	params []string
	body   *ast.BlockStatement
}

// NewFunction returns a Function with the given name, parameters, and body.
func NewFunction(name string, params []string, body *ast.BlockStatement) *Function {
	return &Function{name: name, params: params, body: body}
}

func (f *Function) Type() Type {
	return FUNCTION
}

// Name returns the declared function name.
func (f *Function) Name() string {
	return f.name
}

// Params returns the declared parameter names in positional order.
func (f *Function) Params() []string {
	return f.params
}

// Body returns the function body block.
func (f *Function) Body() *ast.BlockStatement {
	return f.body
}

func (f *Function) Inspect() string {
	return "function " + f.name + "(" + strings.Join(f.params, ", ") + ")"
}

func (f *Function) String() string {
	return f.Inspect()
}

func (f *Function) Interface() interface{} {
	return nil
}

func (f *Function) Equals(other Object) bool {
	o, ok := other.(*Function)
	return ok && o == f
}
