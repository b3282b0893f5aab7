package lexer

import (
	"testing"

	"github.com/momiji-web/momiji/token"
	"github.com/stretchr/testify/require"
)

func TestEmptyInput(t *testing.T) {
	l := New("")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.Type(token.EOF), tok.Type)
}

func TestSingleNumber(t *testing.T) {
	l := New("42")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.Type(token.NUMBER), tok.Type)
	require.Equal(t, "42", tok.Literal)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.Type(token.EOF), tok.Type)
}

func TestAddNumbers(t *testing.T) {
	input := "1 + 2"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.NUMBER, "1"},
		{token.PLUS, "+"},
		{token.NUMBER, "2"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPunctuators(t *testing.T) {
	input := "+-;=(){},."
	tests := []token.Type{
		token.PLUS,
		token.MINUS,
		token.SEMICOLON,
		token.ASSIGN,
		token.LPAREN,
		token.RPAREN,
		token.LBRACE,
		token.RBRACE,
		token.COMMA,
		token.PERIOD,
		token.EOF,
	}
	l := New(input)
	for i, expected := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, expected, tok.Type)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "var foo = bar; function baz() { return qux; }"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.VAR, "var"},
		{token.IDENT, "foo"},
		{token.ASSIGN, "="},
		{token.IDENT, "bar"},
		{token.SEMICOLON, ";"},
		{token.FUNCTION, "function"},
		{token.IDENT, "baz"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "qux"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	l := New(`var s = "hello"; var q = 'world';`)
	var got []token.Token
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		got = append(got, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	require.Equal(t, token.Type(token.STRING), got[3].Type)
	require.Equal(t, "hello", got[3].Literal)
	require.Equal(t, token.Type(token.STRING), got[8].Type)
	require.Equal(t, "world", got[8].Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	_, err := l.Next()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unterminated string")
}

func TestUnexpectedCharacter(t *testing.T) {
	l := New("1 + @")
	var err error
	for i := 0; i < 3; i++ {
		_, err = l.Next()
	}
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unexpected character")
}

func TestWhitespaceSkipped(t *testing.T) {
	l := New(" \t\r\n  42 \n ")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.Type(token.NUMBER), tok.Type)
	require.Equal(t, "42", tok.Literal)
	require.Equal(t, 2, tok.StartPosition.LineNumber())
	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.Type(token.EOF), tok.Type)
}

func TestPositions(t *testing.T) {
	l := New("a\n  bb")
	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, 1, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, "bb", tok.Literal)
	require.Equal(t, 2, tok.StartPosition.LineNumber())
	require.Equal(t, 3, tok.StartPosition.ColumnNumber())
}

// Lexing identical input twice yields identical token sequences.
func TestRelexingIsIdempotent(t *testing.T) {
	input := `function add(a, b) { return a + b; } var r = add(1, 2);`
	lex := func() []token.Token {
		l := New(input)
		var toks []token.Token
		for {
			tok, err := l.Next()
			require.Nil(t, err)
			toks = append(toks, tok)
			if tok.Type == token.EOF {
				return toks
			}
		}
	}
	require.Equal(t, lex(), lex())
}
