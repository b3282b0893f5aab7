package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Identifier is an expression node that refers to a variable by name.
type Identifier struct {
	Name string
}

func (x *Identifier) exprNode() {}

func (x *Identifier) String() string { return x.Name }

// NumericLiteral is an unsigned decimal integer literal.
type NumericLiteral struct {
	Value uint64
}

func (x *NumericLiteral) exprNode() {}

func (x *NumericLiteral) String() string { return strconv.FormatUint(x.Value, 10) }

// StringLiteral is a quoted string literal. The value excludes the quotes.
type StringLiteral struct {
	Value string
}

func (x *StringLiteral) exprNode() {}

func (x *StringLiteral) String() string { return strconv.Quote(x.Value) }

// AdditiveExpression is a binary "+" or "-" expression.
//
// The grammar recurses into the assignment production for the right operand,
// so chained additions associate to the right: "1 - 2 - 3" parses as
// "1 - (2 - 3)".
type AdditiveExpression struct {
	Operator string // "+" or "-"
	Left     Expr   // nil for a parse hole
	Right    Expr   // nil for a parse hole
}

func (x *AdditiveExpression) exprNode() {}

func (x *AdditiveExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(nodeString(x.Left))
	out.WriteString(" " + x.Operator + " ")
	out.WriteString(nodeString(x.Right))
	out.WriteString(")")
	return out.String()
}

// AssignmentExpression binds the value of Right to the target named by Left.
// Assignment is itself an expression whose value is the assigned value.
type AssignmentExpression struct {
	Operator string // always "="
	Left     Expr   // nil for a parse hole
	Right    Expr   // nil for a parse hole
}

func (x *AssignmentExpression) exprNode() {}

func (x *AssignmentExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(nodeString(x.Left))
	out.WriteString(" = ")
	out.WriteString(nodeString(x.Right))
	out.WriteString(")")
	return out.String()
}

// MemberExpression is a named property lookup on an object, "a.b".
type MemberExpression struct {
	Object   Expr // nil for a parse hole
	Property Expr // nil for a parse hole
}

func (x *MemberExpression) exprNode() {}

func (x *MemberExpression) String() string {
	return nodeString(x.Object) + "." + nodeString(x.Property)
}

// CallExpression describes the invocation of a function.
type CallExpression struct {
	Callee    Expr   // nil for a parse hole
	Arguments []Expr // elements may be nil
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) String() string {
	args := make([]string, 0, len(x.Arguments))
	for _, a := range x.Arguments {
		args = append(args, nodeString(a))
	}
	return nodeString(x.Callee) + "(" + strings.Join(args, ", ") + ")"
}
