package ast

import (
	"bytes"
	"strings"
)

// ExpressionStatement is an expression appearing in statement position.
type ExpressionStatement struct {
	Expr Expr // nil for a parse hole
}

func (s *ExpressionStatement) stmtNode() {}

func (s *ExpressionStatement) String() string { return nodeString(s.Expr) + ";" }

// VariableDeclaration is a "var" statement holding one or more declarators.
type VariableDeclaration struct {
	Declarations []*VariableDeclarator // elements may be nil
}

func (s *VariableDeclaration) stmtNode() {}

func (s *VariableDeclaration) String() string {
	decls := make([]string, 0, len(s.Declarations))
	for _, d := range s.Declarations {
		if d == nil {
			decls = append(decls, "<nil>")
			continue
		}
		decls = append(decls, d.String())
	}
	return "var " + strings.Join(decls, ", ") + ";"
}

// VariableDeclarator binds one identifier to an optional initializer.
type VariableDeclarator struct {
	ID   Expr // nil for a parse hole
	Init Expr // nil when the declaration has no initializer
}

func (s *VariableDeclarator) String() string {
	if s.Init == nil {
		return nodeString(s.ID)
	}
	return nodeString(s.ID) + " = " + s.Init.String()
}

// BlockStatement is a braced sequence of statements.
type BlockStatement struct {
	Body []Node // elements may be nil
}

func (s *BlockStatement) stmtNode() {}

func (s *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range s.Body {
		out.WriteString(nodeString(stmt))
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// ReturnStatement halts execution of the enclosing function call, yielding
// the value of its argument.
type ReturnStatement struct {
	Argument Expr // nil for a bare "return" or a parse hole
}

func (s *ReturnStatement) stmtNode() {}

func (s *ReturnStatement) String() string { return "return " + nodeString(s.Argument) + ";" }

// FunctionDeclaration declares a named function with positional parameters.
type FunctionDeclaration struct {
	ID     Expr   // nil for a parse hole
	Params []Expr // identifiers; elements may be nil
	Body   Node   // a *BlockStatement; nil for a parse hole
}

func (s *FunctionDeclaration) stmtNode() {}

func (s *FunctionDeclaration) String() string {
	params := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		params = append(params, nodeString(p))
	}
	return "function " + nodeString(s.ID) + "(" + strings.Join(params, ", ") + ") " + nodeString(s.Body)
}
