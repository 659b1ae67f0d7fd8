// Package token defines the token vocabulary shared by the lexer and parser.
package token

import "fmt"

// Type identifies the kind of a token. The set of types is closed.
type Type uint8

// Token types
const (
	ILLEGAL Type = iota
	EOF
	LPAREN
	RPAREN
	LAMBDA
	AT
	PERIOD
	SYMBOL
)

var typeNames = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	LPAREN:  "(",
	RPAREN:  ")",
	LAMBDA:  "λ",
	AT:      "@",
	PERIOD:  ".",
	SYMBOL:  "SYMBOL",
}

// String returns the canonical spelling of the token type, e.g. "(" or
// "SYMBOL".
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsLambda reports whether the type introduces an abstraction.
func (t Type) IsLambda() bool {
	return t == LAMBDA || t == AT
}

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

func (t Token) String() string {
	if t.Type == SYMBOL {
		return fmt.Sprintf("SYMBOL(%s)", t.Literal)
	}
	return t.Type.String()
}

// New returns a token of the given type whose literal is the type's spelling.
func New(t Type) Token {
	lit := ""
	switch t {
	case LPAREN, RPAREN, LAMBDA, AT, PERIOD:
		lit = t.String()
	}
	return Token{Type: t, Literal: lit}
}

// Symbol returns a SYMBOL token carrying the given name.
func Symbol(name string) Token {
	return Token{Type: SYMBOL, Literal: name}
}
