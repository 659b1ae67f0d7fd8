// Package lexer turns lambda-calculus source text into tokens.
//
// Whitespace separates tokens and is otherwise ignored. The characters
// '(', ')', '.', '@', 'λ' and '\' each form a single token; '@' and '\' are
// ASCII spellings of the lambda. Any other run of non-space characters is a
// SYMBOL.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/risor-io/lambda/token"
)

// Lexer holds the state for scanning an input string.
type Lexer struct {
	input    string
	filename string

	// byte offset of the next rune to read
	pos int

	// current position bookkeeping
	line      int
	lineStart int

	// runes read since lineStart
	column int
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the filename recorded in token positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// Next returns the next token in the input. After the end of the input it
// returns EOF indefinitely. Undecodable input produces an ILLEGAL token and
// a non-nil error.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	start := l.position()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		l.advance(1)
		tok := token.Token{
			Type:          token.ILLEGAL,
			Literal:       l.input[start.Char:l.pos],
			StartPosition: start,
			EndPosition:   l.position(),
		}
		return tok, fmt.Errorf("invalid utf-8 encoding at byte offset %d", start.Char)
	}
	if typ, ok := single(r); ok {
		l.advance(size)
		return token.Token{
			Type:          typ,
			Literal:       string(r),
			StartPosition: start,
			EndPosition:   l.position(),
		}, nil
	}
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if unicode.IsSpace(r) || (r == utf8.RuneError && size <= 1) {
			break
		}
		if _, ok := single(r); ok {
			break
		}
		l.advance(size)
	}
	return token.Token{
		Type:          token.SYMBOL,
		Literal:       l.input[start.Char:l.pos],
		StartPosition: start,
		EndPosition:   l.position(),
	}, nil
}

// Tokens reads the whole input and returns its tokens, including the final
// EOF. It stops at the first error, in which case the last token returned is
// the one that failed.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		toks = append(toks, tok)
		if err != nil {
			return toks, err
		}
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// GetLineText returns the full line of input on which the token starts.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	line := l.input[start:]
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimRight(line, "\r")
}

func single(r rune) (token.Type, bool) {
	switch r {
	case '(':
		return token.LPAREN, true
	case ')':
		return token.RPAREN, true
	case '.':
		return token.PERIOD, true
	case '@':
		return token.AT, true
	case 'λ', '\\':
		return token.LAMBDA, true
	}
	return token.ILLEGAL, false
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.advance(size)
		if r == '\n' {
			l.line++
			l.lineStart = l.pos
			l.column = 0
		}
	}
}

// advance moves past one rune of n bytes.
func (l *Lexer) advance(n int) {
	l.pos += n
	l.column++
}

// position returns the Position of the next unread byte. Columns count runes.
func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.filename,
	}
}
