package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/momiji-web/momiji/ast"
	"github.com/momiji-web/momiji/parser"
)

func newAstCommand() *cobra.Command {
	var code string
	var output string
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the AST for momiji code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := code
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				source = string(data)
			}
			program, err := parser.Parse(cmd.Context(), source)
			if err != nil {
				return err
			}
			if output == "json" {
				return printASTJSON(program)
			}
			fmt.Println(program.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&code, "code", "c", "", "Code to parse")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json, text)")
	return cmd
}

// ASTNode is the JSON shape of one node in the ast output.
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func printASTJSON(program *ast.Program) error {
	root := nodeToJSON(program)
	data, err := json.Marshal(root)
	if err != nil {
		return err
	}
	pretty, err := prettyjson.Format(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(pretty))
	return err
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return &ASTNode{Type: "Hole"}
	}

	result := &ASTNode{Type: reflect.TypeOf(node).Elem().Name()}
	appendChild := func(child ast.Node) {
		result.Children = append(result.Children, nodeToJSON(child))
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Body {
			appendChild(stmt)
		}
	case *ast.Identifier:
		result.Value = n.Name
	case *ast.NumericLiteral:
		result.Value = n.Value
	case *ast.StringLiteral:
		result.Value = n.Value
	case *ast.ExpressionStatement:
		appendChild(n.Expr)
	case *ast.AdditiveExpression:
		result.Value = n.Operator
		appendChild(n.Left)
		appendChild(n.Right)
	case *ast.AssignmentExpression:
		result.Value = n.Operator
		appendChild(n.Left)
		appendChild(n.Right)
	case *ast.MemberExpression:
		appendChild(n.Object)
		appendChild(n.Property)
	case *ast.CallExpression:
		appendChild(n.Callee)
		for _, arg := range n.Arguments {
			appendChild(arg)
		}
	case *ast.VariableDeclaration:
		for _, declarator := range n.Declarations {
			appendChild(declarator)
		}
	case *ast.VariableDeclarator:
		appendChild(n.ID)
		appendChild(n.Init)
	case *ast.BlockStatement:
		for _, stmt := range n.Body {
			appendChild(stmt)
		}
	case *ast.ReturnStatement:
		appendChild(n.Argument)
	case *ast.FunctionDeclaration:
		appendChild(n.ID)
		for _, param := range n.Params {
			appendChild(param)
		}
		appendChild(n.Body)
	}
	return result
}
