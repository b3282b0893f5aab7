// Package ast defines the abstract syntax tree representation of script code.
//
// The node set is closed and follows ESTree naming. Children are held as
// pointers to immutable nodes; after parsing, a tree is never mutated, so
// subtrees may be shared freely. A nil child is a "hole": the parser failed
// to produce anything at that position but still constructed the parent.
// Node equality is structural and the tests compare trees with it directly.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed script: an ordered sequence of top-level
// nodes. It is created once per parse and immutable afterward.
type Program struct {
	Body []Node
}

func (p *Program) String() string {
	var out string
	for i, stmt := range p.Body {
		if i > 0 {
			out += " "
		}
		out += nodeString(stmt)
	}
	return out
}

// nodeString renders a child node, tolerating holes.
func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
