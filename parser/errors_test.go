package parser

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/risor-io/lambda/errors"
	"github.com/risor-io/lambda/token"
)

func TestFilenameInErrors(t *testing.T) {
	_, err := Parse(context.Background(), ")", WithFilename("test.lc"))
	require.Error(t, err)
	pe, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, "test.lc", pe.File())
	require.Equal(t, "test.lc", pe.StartPosition().File)

	_, err = Parse(context.Background(), "\xff", WithFilename("early.lc"))
	require.Error(t, err)
	pe, ok = err.(ParserError)
	require.True(t, ok)
	require.Equal(t, SyntaxErrorType, pe.Type())
	require.Equal(t, "early.lc", pe.File())
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse(context.Background(), "λf.\n  (f x yy)")
	require.Error(t, err)
	pe, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, ")", pe.Expected())
	require.Equal(t, token.SYMBOL, pe.Found())
	require.Equal(t, 2, pe.StartPosition().LineNumber())
	require.Equal(t, 8, pe.StartPosition().ColumnNumber())
	require.Equal(t, "  (f x yy)", pe.SourceCode())
}

func TestFriendlyErrorMessage(t *testing.T) {
	_, err := Parse(context.Background(), "(f x", WithFilename("app.lc"))
	require.Error(t, err)
	var fe errors.FriendlyError
	require.True(t, stderrors.As(err, &fe))
	expected := strings.Join([]string{
		"parse error[E1007]: Expected: ), Found: EOF",
		"  --> app.lc:1:5",
		"   |",
		" 1 | (f x",
		"   |     ^",
		"   = hint: add the missing ')' to close the application",
		"",
	}, "\n")
	require.Equal(t, expected, fe.FriendlyErrorMessage())
}

func TestFriendlyErrorUnderline(t *testing.T) {
	_, err := Parse(context.Background(), "λx y.x")
	require.Error(t, err)
	msg := err.(*BaseParserError).FriendlyErrorMessage()
	require.Contains(t, msg, "parse error[E1001]: Expected: ., Found: SYMBOL\n")
	require.Contains(t, msg, " 1 | λx y.x\n")
	require.Contains(t, msg, "   |    ^\n")
	require.Contains(t, msg, "hint: an abstraction binds exactly one variable")

	_, err = Parse(context.Background(), "x yyy")
	require.Error(t, err)
	msg = err.(*BaseParserError).FriendlyErrorMessage()
	require.Contains(t, msg, "trailing input[E1011]: Expected: EOF, Found: SYMBOL\n")
	require.Contains(t, msg, "   |   ^^^\n")
}

func TestToFormattedWithoutPosition(t *testing.T) {
	_, err := New(token.NewStream(token.New(token.RPAREN))).Parse(context.Background())
	require.Error(t, err)
	formatted := err.(*BaseParserError).ToFormatted()
	require.Equal(t, errors.E1001, formatted.Code)
	require.Equal(t, ParseErrorType, formatted.Kind)
	require.Zero(t, formatted.Line)
	require.Empty(t, formatted.SourceLines)
	require.Equal(t, "unexpected token", formatted.Note)
}

func TestNoteFallsBackToCode(t *testing.T) {
	_, err := Parse(context.Background(), "λ.x")
	require.Error(t, err)
	msg := err.(*BaseParserError).FriendlyErrorMessage()
	require.Contains(t, msg, "   = note: unexpected token\n")
	require.NotContains(t, msg, "hint:")

	// A hint replaces the generic note.
	_, err = Parse(context.Background(), "(f x")
	require.Error(t, err)
	require.Empty(t, err.(*BaseParserError).ToFormatted().Note)
}

func TestNewParserError(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewParserError(ErrorOpts{ErrType: "custom", Message: "ignored", Cause: cause})
	require.Equal(t, "custom: boom", err.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "ignored", err.Message())

	err = NewParserError(ErrorOpts{Message: "plain"})
	require.Equal(t, "plain", err.Error())
	require.False(t, IsMismatch(err))
	require.False(t, IsMismatch(cause))
	require.False(t, IsMismatch(nil))

	syn := NewSyntaxError(ErrorOpts{Cause: cause})
	require.Equal(t, SyntaxErrorType, syn.Type())
	require.Equal(t, errors.E1003, syn.Code())
}

func TestHints(t *testing.T) {
	tests := []struct {
		input string
		hint  string
	}{
		{"(f x y)", "nest them to pass more arguments"},
		{"(f x", "add the missing ')'"},
		{"(f", "the input ended where an expression was expected"},
		{"", "the input ended where an expression was expected"},
		{"f x", "wrap the terms in parentheses"},
		{"λ.x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(context.Background(), tt.input)
			require.Error(t, err)
			hint := err.(*BaseParserError).Hint()
			if tt.hint == "" {
				require.Empty(t, hint)
				return
			}
			require.Contains(t, hint, tt.hint)
		})
	}
}
