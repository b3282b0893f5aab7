package interp

import "github.com/momiji-web/momiji/object"

// Scope is one frame of the environment: a variable map and a function map
// with an optional parent. Lookups that miss locally fail over to the
// parent. The interpreter keeps one global scope and creates one child
// frame per function call.
type Scope struct {
	parent *Scope
	vars   map[string]object.Object
	funcs  map[string]*object.Function
}

// NewScope returns an empty scope whose lookups fail over to parent.
// A nil parent makes a global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		vars:   map[string]object.Object{},
		funcs:  map[string]*object.Function{},
	}
}

// Get resolves a variable name, walking up the scope chain.
func (s *Scope) Get(name string) (object.Object, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if value, ok := scope.vars[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Declare binds a name in this scope, shadowing any outer binding.
func (s *Scope) Declare(name string, value object.Object) {
	s.vars[name] = value
}

// Assign rebinds a name in the nearest enclosing scope that already defines
// it; if no scope defines it, the name is created in this scope.
func (s *Scope) Assign(name string, value object.Object) {
	for scope := s; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = value
			return
		}
	}
	s.vars[name] = value
}

// GetFunction resolves a declared function name, walking up the scope chain.
func (s *Scope) GetFunction(name string) (*object.Function, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if fn, ok := scope.funcs[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// DeclareFunction registers a declared function in this scope.
func (s *Scope) DeclareFunction(fn *object.Function) {
	s.funcs[fn.Name()] = fn
}
