// Package lexer turns script source text into a stream of tokens.
//
// A lexer is created by calling New() with the input string. Tokens are then
// pulled one at a time with Next(), which returns an EOF token once the input
// is exhausted. The lexer is forward-only; to re-lex an input, create a new
// lexer from the same string.
package lexer

import (
	"fmt"

	"github.com/momiji-web/momiji/token"
)

// Lexer holds the state for lexing one input string.
type Lexer struct {
	input  []rune
	pos    int
	line   int
	column int
}

// New returns a Lexer for the given script source text.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token from the input. When the input is exhausted,
// it returns a token of type token.EOF. A character that does not start any
// token is a fatal lexing error: Next returns a non-nil error and the input
// must be considered unusable.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: l.position()}, nil
	}

	start := l.position()
	c := l.input[l.pos]

	switch c {
	case '+':
		return l.emit(token.PLUS, start), nil
	case '-':
		return l.emit(token.MINUS, start), nil
	case ';':
		return l.emit(token.SEMICOLON, start), nil
	case '=':
		return l.emit(token.ASSIGN, start), nil
	case '(':
		return l.emit(token.LPAREN, start), nil
	case ')':
		return l.emit(token.RPAREN, start), nil
	case '{':
		return l.emit(token.LBRACE, start), nil
	case '}':
		return l.emit(token.RBRACE, start), nil
	case ',':
		return l.emit(token.COMMA, start), nil
	case '.':
		return l.emit(token.PERIOD, start), nil
	case '"', '\'':
		return l.readString(c, start)
	}

	if isDigit(c) {
		return token.Token{
			Type:          token.NUMBER,
			Literal:       l.readNumber(),
			StartPosition: start,
		}, nil
	}

	if isIdentStart(c) {
		literal := l.readIdentifier()
		return token.Token{
			Type:          token.LookupIdentifier(literal),
			Literal:       literal,
			StartPosition: start,
		}, nil
	}

	return token.Token{}, fmt.Errorf("unexpected character %q at line %d, column %d",
		c, start.LineNumber(), start.ColumnNumber())
}

// emit consumes the current character and returns a single-character token.
func (l *Lexer) emit(t token.Type, start token.Position) token.Token {
	literal := string(l.input[l.pos])
	l.advance()
	return token.Token{Type: t, Literal: literal, StartPosition: start}
}

// readNumber greedily consumes a run of decimal digits.
func (l *Lexer) readNumber() string {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readIdentifier consumes a letter- or underscore-initiated run of
// alphanumerics.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readString consumes characters up to the matching closing quote. Escape
// sequences are not recognized. A string left open at end of input is a
// fatal lexing error.
func (l *Lexer) readString(quote rune, start token.Position) (token.Token, error) {
	l.advance() // opening quote
	from := l.pos
	for l.pos < len(l.input) {
		if l.input[l.pos] == quote {
			literal := string(l.input[from:l.pos])
			l.advance() // closing quote
			return token.Token{Type: token.STRING, Literal: literal, StartPosition: start}, nil
		}
		l.advance()
	}
	return token.Token{}, fmt.Errorf("unterminated string literal at line %d, column %d",
		start.LineNumber(), start.ColumnNumber())
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) && l.input[l.pos] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}
