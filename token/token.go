// Package token defines language keywords and tokens used when lexing script
// source code.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Line   int // 0-based line index
	Column int // 0-based column index
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
}

// Token types
const (
	ASSIGN    = "="
	COMMA     = ","
	EOF       = "EOF"
	FUNCTION  = "FUNCTION"
	IDENT     = "IDENT"
	LBRACE    = "{"
	LPAREN    = "("
	MINUS     = "-"
	NUMBER    = "NUMBER"
	PERIOD    = "."
	PLUS      = "+"
	RBRACE    = "}"
	RETURN    = "RETURN"
	RPAREN    = ")"
	SEMICOLON = ";"
	STRING    = "STRING"
	VAR       = "VAR"
)

// Reserved keywords
var keywords = map[string]Type{
	"function": FUNCTION,
	"return":   RETURN,
	"var":      VAR,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the given token type is a reserved keyword.
func IsKeyword(t Type) bool {
	switch t {
	case FUNCTION, RETURN, VAR:
		return true
	}
	return false
}
