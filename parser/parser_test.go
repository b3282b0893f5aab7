package parser

import (
	"context"
	"testing"

	"github.com/momiji-web/momiji/ast"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := Parse(context.Background(), input)
	require.Nil(t, err)
	return program
}

func TestEmptyProgram(t *testing.T) {
	program := parse(t, "")
	require.Equal(t, &ast.Program{}, program)
	require.Len(t, program.Body, 0)
}

func TestNumber(t *testing.T) {
	program := parse(t, "42")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.NumericLiteral{Value: 42},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestAddNumbers(t *testing.T) {
	program := parse(t, "1 + 2")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.AdditiveExpression{
					Operator: "+",
					Left:     &ast.NumericLiteral{Value: 1},
					Right:    &ast.NumericLiteral{Value: 2},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

// Chained '+'/'-' associate to the right because the additive production
// recurses into the assignment production for its right operand.
func TestAdditiveIsRightAssociative(t *testing.T) {
	program := parse(t, "1 - 2 - 3")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.AdditiveExpression{
					Operator: "-",
					Left:     &ast.NumericLiteral{Value: 1},
					Right: &ast.AdditiveExpression{
						Operator: "-",
						Left:     &ast.NumericLiteral{Value: 2},
						Right:    &ast.NumericLiteral{Value: 3},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestAssignVariable(t *testing.T) {
	program := parse(t, `var foo="bar";`)
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.VariableDeclaration{
				Declarations: []*ast.VariableDeclarator{
					{
						ID:   &ast.Identifier{Name: "foo"},
						Init: &ast.StringLiteral{Value: "bar"},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestAddVariableAndNumber(t *testing.T) {
	program := parse(t, "var foo=42; var result=foo+1;")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.VariableDeclaration{
				Declarations: []*ast.VariableDeclarator{
					{
						ID:   &ast.Identifier{Name: "foo"},
						Init: &ast.NumericLiteral{Value: 42},
					},
				},
			},
			&ast.VariableDeclaration{
				Declarations: []*ast.VariableDeclarator{
					{
						ID: &ast.Identifier{Name: "result"},
						Init: &ast.AdditiveExpression{
							Operator: "+",
							Left:     &ast.Identifier{Name: "foo"},
							Right:    &ast.NumericLiteral{Value: 1},
						},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestDefineFunction(t *testing.T) {
	program := parse(t, "function foo() { return 42; }")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.FunctionDeclaration{
				ID: &ast.Identifier{Name: "foo"},
				Body: &ast.BlockStatement{
					Body: []ast.Node{
						&ast.ReturnStatement{
							Argument: &ast.NumericLiteral{Value: 42},
						},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestDefineFunctionWithArgs(t *testing.T) {
	program := parse(t, "function foo(a, b) { return a+b; }")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.FunctionDeclaration{
				ID: &ast.Identifier{Name: "foo"},
				Params: []ast.Expr{
					&ast.Identifier{Name: "a"},
					&ast.Identifier{Name: "b"},
				},
				Body: &ast.BlockStatement{
					Body: []ast.Node{
						&ast.ReturnStatement{
							Argument: &ast.AdditiveExpression{
								Operator: "+",
								Left:     &ast.Identifier{Name: "a"},
								Right:    &ast.Identifier{Name: "b"},
							},
						},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestCallFunctionAddNumber(t *testing.T) {
	program := parse(t, "function foo() { return 42; } var result = foo() + 1;")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.FunctionDeclaration{
				ID: &ast.Identifier{Name: "foo"},
				Body: &ast.BlockStatement{
					Body: []ast.Node{
						&ast.ReturnStatement{
							Argument: &ast.NumericLiteral{Value: 42},
						},
					},
				},
			},
			&ast.VariableDeclaration{
				Declarations: []*ast.VariableDeclarator{
					{
						ID: &ast.Identifier{Name: "result"},
						Init: &ast.AdditiveExpression{
							Operator: "+",
							Left: &ast.CallExpression{
								Callee: &ast.Identifier{Name: "foo"},
							},
							Right: &ast.NumericLiteral{Value: 1},
						},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

// Member access binds tighter than call: a.b() is a call whose callee is the
// member expression a.b.
func TestMemberCall(t *testing.T) {
	program := parse(t, `document.getElementById("target");`)
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.CallExpression{
					Callee: &ast.MemberExpression{
						Object:   &ast.Identifier{Name: "document"},
						Property: &ast.Identifier{Name: "getElementById"},
					},
					Arguments: []ast.Expr{
						&ast.StringLiteral{Value: "target"},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	program := parse(t, "a = b = 1")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.AssignmentExpression{
					Operator: "=",
					Left:     &ast.Identifier{Name: "a"},
					Right: &ast.AssignmentExpression{
						Operator: "=",
						Left:     &ast.Identifier{Name: "b"},
						Right:    &ast.NumericLiteral{Value: 1},
					},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

// A malformed primary expression is recovered as a nil hole; the enclosing
// statement is still constructed.
func TestParseHole(t *testing.T) {
	program := parse(t, "1 + ;")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.AdditiveExpression{
					Operator: "+",
					Left:     &ast.NumericLiteral{Value: 1},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestVarWithoutInitializer(t *testing.T) {
	program := parse(t, "var foo")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.VariableDeclaration{
				Declarations: []*ast.VariableDeclarator{
					{ID: &ast.Identifier{Name: "foo"}},
				},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestFunctionMissingParamListIsFatal(t *testing.T) {
	_, err := Parse(context.Background(), "function foo { return 42; }")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "syntax error")
	require.Contains(t, err.Error(), "parameter list")
}

func TestFunctionMissingBodyIsFatal(t *testing.T) {
	_, err := Parse(context.Background(), "function foo() return 42;")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "missing body")
}

func TestUnterminatedFunctionBodyIsFatal(t *testing.T) {
	_, err := Parse(context.Background(), "function foo() { return 42;")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "end of input")
}

func TestLexErrorIsFatal(t *testing.T) {
	_, err := Parse(context.Background(), "var a = 1 @ 2;")
	require.NotNil(t, err)
	var perr ParserError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "syntax error", perr.Type())
}

// Two independently parsed programs from identical source are node-for-node
// equal.
func TestParsingIsDeterministic(t *testing.T) {
	input := `function add(a, b) { return a + b; } var r = add(40, 2); r.label;`
	require.Equal(t, parse(t, input), parse(t, input))
}

// Numeric literals wrap on unsigned 64-bit overflow instead of erroring.
func TestNumericOverflowWraps(t *testing.T) {
	// 18446744073709551616 == 2^64, which wraps to 0.
	program := parse(t, "18446744073709551616")
	expected := &ast.Program{
		Body: []ast.Node{
			&ast.ExpressionStatement{
				Expr: &ast.NumericLiteral{Value: 0},
			},
		},
	}
	require.Equal(t, expected, program)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "1 + 2")
	require.ErrorIs(t, err, context.Canceled)
}
