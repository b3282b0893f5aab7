// Package interp walks a parsed program and evaluates it.
//
// The interpreter owns an environment made of a single global scope plus one
// local frame per function call. Host objects (for example a document) are
// injected at construction time with WithGlobals; the interpreter resolves
// members on them only through the object.Attributes capability and has no
// compile-time dependency on any host model.
//
// Evaluation is synchronous and single-threaded. A runtime failure (an
// unresolved identifier, calling a non-function, a type error in an
// operator) aborts the Execute pass; side effects applied before the failure
// are kept. Nil AST children ("holes" left by the parser) evaluate to
// nothing and are never an error by themselves.
package interp

import (
	"context"
	"errors"
	"fmt"

	"github.com/momiji-web/momiji/ast"
	"github.com/momiji-web/momiji/object"
)

// Sentinel runtime errors, matched with errors.Is.
var (
	// ErrUndefined indicates an identifier or property that resolves to nothing.
	ErrUndefined = errors.New("undefined")

	// ErrNotCallable indicates a call whose callee is not a function.
	ErrNotCallable = errors.New("not callable")

	// ErrBadAssignment indicates an assignment whose target is not an identifier.
	ErrBadAssignment = errors.New("invalid assignment target")
)

// Option is a configuration function for an Interpreter.
type Option func(*Interpreter)

// WithGlobals injects named bindings into the global scope. This is how the
// host exposes objects (e.g. "document") and builtin functions to scripts.
// This option is additive and may be supplied multiple times.
func WithGlobals(globals map[string]object.Object) Option {
	return func(i *Interpreter) {
		for name, value := range globals {
			i.globals.Declare(name, value)
		}
	}
}

// Interpreter evaluates programs against a persistent global environment.
// It is not safe for concurrent use; one interpreter evaluates one script
// at a time, to completion.
type Interpreter struct {
	globals *Scope
}

// New returns an Interpreter with a fresh global scope.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{globals: NewScope(nil)}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Global resolves a name in the global scope. Useful for hosts and tests
// that want to observe script effects on the environment.
func (i *Interpreter) Global(name string) (object.Object, bool) {
	return i.globals.Get(name)
}

// Execute evaluates each top-level node of the program in order for its side
// effects, stopping at the first runtime error.
func (i *Interpreter) Execute(ctx context.Context, program *ast.Program) error {
	for _, node := range program.Body {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, _, err := i.eval(ctx, node, i.globals); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates a single node against the global scope and returns its
// value. Nodes that produce nothing (statements, holes) yield Undefined.
func (i *Interpreter) Eval(ctx context.Context, node ast.Node) (object.Object, error) {
	value, _, err := i.eval(ctx, node, i.globals)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return object.UndefinedValue, nil
	}
	return value, nil
}

// eval reduces one node to a value. The returned boolean is the "returning"
// control signal: true means a return statement fired and evaluation of the
// enclosing blocks must stop until the nearest call boundary. A nil value
// with a nil error means the node produced nothing.
func (i *Interpreter) eval(ctx context.Context, node ast.Node, scope *Scope) (object.Object, bool, error) {
	if node == nil {
		return nil, false, nil
	}
	switch node := node.(type) {
	case *ast.NumericLiteral:
		return object.NewNumber(node.Value), false, nil
	case *ast.StringLiteral:
		return object.NewString(node.Value), false, nil
	case *ast.Identifier:
		return i.evalIdentifier(node, scope)
	case *ast.ExpressionStatement:
		return i.eval(ctx, node.Expr, scope)
	case *ast.AdditiveExpression:
		return i.evalAdditive(ctx, node, scope)
	case *ast.AssignmentExpression:
		return i.evalAssignment(ctx, node, scope)
	case *ast.VariableDeclaration:
		return i.evalVariableDeclaration(ctx, node, scope)
	case *ast.BlockStatement:
		return i.evalBlock(ctx, node, scope)
	case *ast.ReturnStatement:
		return i.evalReturn(ctx, node, scope)
	case *ast.FunctionDeclaration:
		return i.evalFunctionDeclaration(node, scope)
	case *ast.CallExpression:
		return i.evalCall(ctx, node, scope)
	case *ast.MemberExpression:
		return i.evalMember(ctx, node, scope)
	}
	return nil, false, fmt.Errorf("eval error: unsupported node %T", node)
}

func (i *Interpreter) evalIdentifier(node *ast.Identifier, scope *Scope) (object.Object, bool, error) {
	if value, ok := scope.Get(node.Name); ok {
		return value, false, nil
	}
	if fn, ok := scope.GetFunction(node.Name); ok {
		return fn, false, nil
	}
	return nil, false, fmt.Errorf("%w identifier %q", ErrUndefined, node.Name)
}

func (i *Interpreter) evalAdditive(ctx context.Context, node *ast.AdditiveExpression, scope *Scope) (object.Object, bool, error) {
	left, _, err := i.eval(ctx, node.Left, scope)
	if err != nil {
		return nil, false, err
	}
	if left == nil {
		return nil, false, nil
	}
	right, _, err := i.eval(ctx, node.Right, scope)
	if err != nil {
		return nil, false, err
	}
	if right == nil {
		return nil, false, nil
	}
	value, err := object.BinaryOp(node.Operator, left, right)
	if err != nil {
		return nil, false, err
	}
	return value, false, nil
}

func (i *Interpreter) evalAssignment(ctx context.Context, node *ast.AssignmentExpression, scope *Scope) (object.Object, bool, error) {
	if node.Left == nil {
		return nil, false, nil // hole where the target should be
	}
	target, ok := node.Left.(*ast.Identifier)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrBadAssignment, node.Left.String())
	}
	value, _, err := i.eval(ctx, node.Right, scope)
	if err != nil {
		return nil, false, err
	}
	if value == nil {
		value = object.UndefinedValue
	}
	scope.Assign(target.Name, value)
	return value, false, nil
}

func (i *Interpreter) evalVariableDeclaration(ctx context.Context, node *ast.VariableDeclaration, scope *Scope) (object.Object, bool, error) {
	for _, declarator := range node.Declarations {
		if declarator == nil {
			continue
		}
		id, ok := declarator.ID.(*ast.Identifier)
		if !ok {
			continue // hole where the name should be; nothing to bind
		}
		value, _, err := i.eval(ctx, declarator.Init, scope)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			value = object.UndefinedValue
		}
		scope.Declare(id.Name, value)
	}
	return nil, false, nil
}

func (i *Interpreter) evalBlock(ctx context.Context, node *ast.BlockStatement, scope *Scope) (object.Object, bool, error) {
	for _, stmt := range node.Body {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		value, returning, err := i.eval(ctx, stmt, scope)
		if err != nil {
			return nil, false, err
		}
		if returning {
			return value, true, nil
		}
	}
	return nil, false, nil
}

func (i *Interpreter) evalReturn(ctx context.Context, node *ast.ReturnStatement, scope *Scope) (object.Object, bool, error) {
	value, _, err := i.eval(ctx, node.Argument, scope)
	if err != nil {
		return nil, false, err
	}
	if value == nil {
		value = object.UndefinedValue
	}
	return value, true, nil
}

// evalFunctionDeclaration registers the function in the current scope. The
// binding is created when the declaration executes; there is no hoisting, so
// calling a function above its declaration is a runtime error.
func (i *Interpreter) evalFunctionDeclaration(node *ast.FunctionDeclaration, scope *Scope) (object.Object, bool, error) {
	id, ok := node.ID.(*ast.Identifier)
	if !ok {
		return nil, false, nil // hole where the name should be
	}
	var params []string
	for _, param := range node.Params {
		if p, ok := param.(*ast.Identifier); ok {
			params = append(params, p.Name)
		}
	}
	body, _ := node.Body.(*ast.BlockStatement)
	scope.DeclareFunction(object.NewFunction(id.Name, params, body))
	return nil, false, nil
}

func (i *Interpreter) evalCall(ctx context.Context, node *ast.CallExpression, scope *Scope) (object.Object, bool, error) {
	callee, err := i.resolveCallee(ctx, node.Callee, scope)
	if err != nil {
		return nil, false, err
	}
	if callee == nil {
		return nil, false, nil // hole where the callee should be
	}

	// Arguments evaluate in the caller's environment, left to right.
	args := make([]object.Object, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		value, _, err := i.eval(ctx, arg, scope)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			value = object.UndefinedValue
		}
		args = append(args, value)
	}

	switch callee := callee.(type) {
	case *object.Function:
		value, err := i.applyFunction(ctx, callee, args)
		return value, false, err
	case object.Callable:
		value, err := callee.Call(ctx, args...)
		if err != nil {
			return nil, false, err
		}
		if value == nil {
			value = object.UndefinedValue
		}
		return value, false, nil
	}
	return nil, false, fmt.Errorf("%w: %s object", ErrNotCallable, callee.Type())
}

// resolveCallee resolves the callee expression of a call. Identifiers check
// declared functions before falling back to ordinary bindings (builtins
// injected by the host); anything else evaluates normally.
func (i *Interpreter) resolveCallee(ctx context.Context, callee ast.Expr, scope *Scope) (object.Object, error) {
	if callee == nil {
		return nil, nil
	}
	if id, ok := callee.(*ast.Identifier); ok {
		if fn, ok := scope.GetFunction(id.Name); ok {
			return fn, nil
		}
		if value, ok := scope.Get(id.Name); ok {
			return value, nil
		}
		return nil, fmt.Errorf("%w function %q", ErrUndefined, id.Name)
	}
	value, _, err := i.eval(ctx, callee, scope)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// applyFunction binds arguments positionally into a fresh call frame and
// evaluates the function body there. Extra arguments are ignored and missing
// arguments bind as undefined. The frame's parent is the global scope, so
// lookups fail over global-ward and never into the caller's frame.
func (i *Interpreter) applyFunction(ctx context.Context, fn *object.Function, args []object.Object) (object.Object, error) {
	frame := NewScope(i.globals)
	for pos, name := range fn.Params() {
		if pos < len(args) {
			frame.Declare(name, args[pos])
		} else {
			frame.Declare(name, object.UndefinedValue)
		}
	}
	body := fn.Body()
	if body == nil {
		return object.UndefinedValue, nil
	}
	value, returning, err := i.evalBlock(ctx, body, frame)
	if err != nil {
		return nil, err
	}
	if !returning || value == nil {
		return object.UndefinedValue, nil
	}
	return value, nil
}

func (i *Interpreter) evalMember(ctx context.Context, node *ast.MemberExpression, scope *Scope) (object.Object, bool, error) {
	obj, _, err := i.eval(ctx, node.Object, scope)
	if err != nil {
		return nil, false, err
	}
	if obj == nil {
		return nil, false, nil
	}
	property, ok := node.Property.(*ast.Identifier)
	if !ok {
		return nil, false, nil // hole where the property name should be
	}
	attrs, ok := obj.(object.Attributes)
	if !ok {
		return nil, false, fmt.Errorf("type error: %s object has no properties", obj.Type())
	}
	value, ok := attrs.GetAttr(property.Name)
	if !ok {
		return nil, false, fmt.Errorf("%w property %q", ErrUndefined, property.Name)
	}
	return value, false, nil
}
