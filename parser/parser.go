// Package parser is used to generate the abstract syntax tree (AST) for a
// script.
//
// A parser is created by calling New() with a lexer as input. The parser
// should then be used only once, by calling parser.Parse() to produce the AST.
//
// The grammar is parsed by recursive descent with exactly one token of
// lookahead. Local failures do not abort the parse: an unexpected token where
// an expression was expected yields a nil child ("hole") and the enclosing
// node is still built. Only structural failures inside a function declaration
// (a missing parameter list, a missing body brace, end of input before the
// closing brace) and lexing failures are fatal, in which case Parse returns a
// non-nil error and the program must be treated as unusable.
package parser

import (
	"context"
	"fmt"

	"github.com/momiji-web/momiji/ast"
	"github.com/momiji-web/momiji/lexer"
	"github.com/momiji-web/momiji/token"
)

// Parse the provided input as script source code and return the AST. This is
// a shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string) (*ast.Program, error) {
	return New(lexer.New(input)).Parse(ctx)
}

// Parser object
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// curToken is the single token of lookahead: the next unconsumed token.
	curToken token.Token

	// err holds the first fatal error encountered, if any.
	err error
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Prime the token pump
	p.advance()
	return p
}

// Parse the program that is provided via the lexer.
//
// The top-level production is applied repeatedly until it yields nothing,
// so a top-level construct that parses to nothing ends the parse and the
// remainder of the input is silently ignored. Fatal errors abort the parse
// and no program is returned.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	program := &ast.Program{}
	for p.err == nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		node := p.sourceElement()
		if node == nil {
			break
		}
		program.Body = append(program.Body, node)
	}
	if p.err != nil {
		return nil, p.err
	}
	return program, nil
}

// peek returns the lookahead token without consuming it.
func (p *Parser) peek() token.Token {
	return p.curToken
}

// next consumes and returns the lookahead token.
func (p *Parser) next() token.Token {
	tok := p.curToken
	p.advance()
	return tok
}

// advance pulls the next token from the lexer. A lexing failure is recorded
// as a fatal syntax error and the lookahead collapses to EOF.
func (p *Parser) advance() {
	if p.err != nil {
		p.curToken = token.Token{Type: token.EOF}
		return
	}
	tok, err := p.l.Next()
	if err != nil {
		p.err = NewSyntaxError(ErrorOpts{Cause: err})
		p.curToken = token.Token{Type: token.EOF}
		return
	}
	p.curToken = tok
}

// fatalf records a fatal structural error at the given token.
func (p *Parser) fatalf(tok token.Token, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = NewSyntaxError(ErrorOpts{
		Message:       fmt.Sprintf(format, args...),
		StartPosition: tok.StartPosition,
	})
}

// sourceElement := functionDeclaration | statement
func (p *Parser) sourceElement() ast.Node {
	switch p.peek().Type {
	case token.EOF:
		return nil
	case token.FUNCTION:
		p.next()
		return p.functionDeclaration()
	default:
		return p.statement()
	}
}

// statement := 'var' variableDeclaration
//            | 'return' assignmentExpression
//            | expressionStatement
//
// A trailing ';' is optional and consumed opportunistically.
func (p *Parser) statement() ast.Node {
	var node ast.Node
	switch tok := p.peek(); {
	case tok.Type == token.EOF:
		return nil
	case tok.Type == token.VAR:
		p.next()
		node = p.variableDeclaration()
	case tok.Type == token.RETURN:
		p.next()
		node = &ast.ReturnStatement{Argument: p.assignmentExpression()}
	case token.IsKeyword(tok.Type):
		node = nil
	default:
		node = &ast.ExpressionStatement{Expr: p.assignmentExpression()}
	}
	if p.peek().Type == token.SEMICOLON {
		p.next()
	}
	return node
}

// assignmentExpression := additiveExpression ('=' assignmentExpression)?
//
// Right-associative by direct recursion.
func (p *Parser) assignmentExpression() ast.Expr {
	expr := p.additiveExpression()
	if p.peek().Type == token.ASSIGN {
		p.next()
		return &ast.AssignmentExpression{
			Operator: "=",
			Left:     expr,
			Right:    p.assignmentExpression(),
		}
	}
	return expr
}

// additiveExpression := leftHandSideExpression (('+'|'-') assignmentExpression)?
//
// The right operand recurses into the assignment production rather than
// looping, so chained '+'/'-' associate to the right.
func (p *Parser) additiveExpression() ast.Expr {
	left := p.leftHandSideExpression()
	switch p.peek().Type {
	case token.PLUS, token.MINUS:
		op := p.next()
		return &ast.AdditiveExpression{
			Operator: op.Literal,
			Left:     left,
			Right:    p.assignmentExpression(),
		}
	}
	return left
}

// leftHandSideExpression := memberExpression ('(' arguments)?
func (p *Parser) leftHandSideExpression() ast.Expr {
	expr := p.memberExpression()
	if p.peek().Type == token.LPAREN {
		p.next()
		return &ast.CallExpression{Callee: expr, Arguments: p.arguments()}
	}
	return expr
}

// memberExpression := primaryExpression ('.' identifier)?
//
// Member access binds tighter than call: "a.b()" parses "a.b" first and the
// call wraps the member expression.
func (p *Parser) memberExpression() ast.Expr {
	expr := p.primaryExpression()
	if p.peek().Type == token.PERIOD {
		p.next()
		return &ast.MemberExpression{Object: expr, Property: p.identifier()}
	}
	return expr
}

// primaryExpression := identifier | stringLiteral | number
//
// Any other token is consumed and yields a hole.
func (p *Parser) primaryExpression() ast.Expr {
	if p.peek().Type == token.EOF {
		return nil
	}
	tok := p.next()
	switch tok.Type {
	case token.IDENT:
		return &ast.Identifier{Name: tok.Literal}
	case token.STRING:
		return &ast.StringLiteral{Value: tok.Literal}
	case token.NUMBER:
		return &ast.NumericLiteral{Value: numericValue(tok.Literal)}
	default:
		return nil
	}
}

// arguments := (assignmentExpression (',' assignmentExpression)*)? ')'
func (p *Parser) arguments() []ast.Expr {
	var args []ast.Expr
	for p.err == nil {
		switch p.peek().Type {
		case token.RPAREN:
			p.next()
			return args
		case token.COMMA:
			p.next()
		case token.EOF:
			return args
		default:
			args = append(args, p.assignmentExpression())
		}
	}
	return args
}

// variableDeclaration := identifier initializer?
func (p *Parser) variableDeclaration() ast.Node {
	declarator := &ast.VariableDeclarator{
		ID:   p.identifier(),
		Init: p.initializer(),
	}
	return &ast.VariableDeclaration{
		Declarations: []*ast.VariableDeclarator{declarator},
	}
}

// identifier consumes one token and yields an Identifier node, or a hole if
// the token is not an identifier.
func (p *Parser) identifier() ast.Expr {
	if p.peek().Type == token.EOF {
		return nil
	}
	if tok := p.next(); tok.Type == token.IDENT {
		return &ast.Identifier{Name: tok.Literal}
	}
	return nil
}

// initializer := '=' assignmentExpression
//
// The token after the identifier is consumed either way; a missing '='
// yields a hole.
func (p *Parser) initializer() ast.Expr {
	if p.peek().Type == token.EOF {
		return nil
	}
	if tok := p.next(); tok.Type == token.ASSIGN {
		return p.assignmentExpression()
	}
	return nil
}

// functionDeclaration := 'function' identifier '(' paramList ')' '{' sourceElement* '}'
//
// The 'function' keyword has already been consumed by the caller.
func (p *Parser) functionDeclaration() ast.Node {
	id := p.identifier()
	params := p.parameterList()
	if p.err != nil {
		return nil
	}
	return &ast.FunctionDeclaration{ID: id, Params: params, Body: p.functionBody()}
}

// parameterList consumes '(' identifier (',' identifier)* ')'. A missing
// opening parenthesis is a fatal structural error.
func (p *Parser) parameterList() []ast.Expr {
	if tok := p.next(); tok.Type != token.LPAREN {
		p.fatalf(tok, "function declaration missing parameter list (got %q)", tok.Literal)
		return nil
	}
	var params []ast.Expr
	for p.err == nil {
		switch p.peek().Type {
		case token.RPAREN:
			p.next()
			return params
		case token.COMMA:
			p.next()
		case token.EOF:
			return params
		default:
			params = append(params, p.identifier())
		}
	}
	return params
}

// functionBody consumes '{' sourceElement* '}'. A missing opening brace or
// end of input before the closing brace is a fatal structural error.
func (p *Parser) functionBody() ast.Node {
	if tok := p.next(); tok.Type != token.LBRACE {
		p.fatalf(tok, "function declaration missing body (got %q)", tok.Literal)
		return nil
	}
	block := &ast.BlockStatement{}
	for p.err == nil {
		switch p.peek().Type {
		case token.RBRACE:
			p.next()
			return block
		case token.EOF:
			p.fatalf(p.peek(), "unexpected end of input in function body")
			return nil
		default:
			block.Body = append(block.Body, p.sourceElement())
		}
	}
	return nil
}

// numericValue accumulates the decimal digits of a number literal into an
// unsigned 64-bit integer. Overflow wraps; it is never an error.
func numericValue(literal string) uint64 {
	var value uint64
	for _, c := range literal {
		value = value*10 + uint64(c-'0')
	}
	return value
}
