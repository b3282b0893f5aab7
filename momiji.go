// Package momiji is a minimal browser engine built around a small embedded
// scripting language (a JavaScript subset). This package is the convenience
// surface: Parse turns source into an AST and Eval runs source to a native
// Go value. The subpackages hold the machinery: token, lexer, ast, parser,
// object and interp form the scripting core, dom is the document model, and
// browser ties documents to script execution.
package momiji

import (
	"context"

	"github.com/momiji-web/momiji/ast"
	"github.com/momiji-web/momiji/interp"
	"github.com/momiji-web/momiji/object"
	"github.com/momiji-web/momiji/parser"
)

// Option configures an evaluation.
type Option func(*options)

type options struct {
	globals map[string]object.Object
}

func collectOptions(opts ...Option) *options {
	o := &options{globals: map[string]object.Object{}}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithGlobals provides host bindings that are made available to scripts.
// This option is additive, so multiple WithGlobals options may be supplied.
// If the same key is supplied multiple times, the last value wins.
func WithGlobals(globals map[string]object.Object) Option {
	return func(o *options) {
		for name, value := range globals {
			o.globals[name] = value
		}
	}
}

// WithGlobal supplies a single named host binding.
func WithGlobal(name string, value object.Object) Option {
	return func(o *options) {
		o.globals[name] = value
	}
}

// Parse turns script source into an AST. The returned program may be a
// silently truncated prefix of the input; a non-nil error means the source
// failed to lex or had a structurally broken function declaration, and the
// program must not be used.
func Parse(ctx context.Context, source string) (*ast.Program, error) {
	return parser.Parse(ctx, source)
}

// Eval parses and runs source code, returning the value of the last
// top-level node as a native Go value (uint64 for numbers, string for
// strings, nil for undefined). Objects with no Go equivalent come back as
// their Inspect rendering.
func Eval(ctx context.Context, source string, opts ...Option) (any, error) {
	o := collectOptions(opts...)
	program, err := parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	i := interp.New(interp.WithGlobals(o.globals))
	result := object.Object(object.UndefinedValue)
	for _, node := range program.Body {
		result, err = i.Eval(ctx, node)
		if err != nil {
			return nil, err
		}
	}
	value := result.Interface()
	if value == nil {
		if _, undefined := result.(*object.Undefined); !undefined {
			return result.Inspect(), nil
		}
	}
	return value, nil
}
