package parser

import (
	stderrors "errors"
	"fmt"

	"github.com/risor-io/lambda/errors"
	"github.com/risor-io/lambda/token"
)

// Error types reported by ParserError.Type.
const (
	ParseErrorType    = "parse error"
	SyntaxErrorType   = "syntax error"
	TrailingInputType = "trailing input"
	ContextErrorType  = "context error"
)

// ErrParserUsed is returned when Parse is called more than once on the same
// Parser.
var ErrParserUsed = stderrors.New("parser: Parse called more than once")

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	Expected      string
	Found         token.Type
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Hint          string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		expected:      opts.Expected,
		found:         opts.Found,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		hint:          opts.Hint,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Code() errors.ErrorCode
	Message() string
	Cause() error
	// Expected describes the token type(s) the grammar accepted at the
	// failure point, e.g. "SYMBOL" or "(, λ, @, or SYMBOL". Empty for errors
	// that are not grammar mismatches.
	Expected() string
	// Found is the type of the lookahead token at the failure point.
	Found() token.Type
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Error() string
	errors.FriendlyError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "parse error"
	errType string
	// Stable error code
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// Description of the acceptable token types
	expected string
	// Type of the offending token
	found token.Type
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// Optional suggestion shown in friendly output
	hint string
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}
	formatted := &errors.FormattedError{
		Code:     e.code,
		Kind:     e.errType,
		Message:  message,
		Filename: e.file,
		Hint:     e.hint,
	}
	if e.hint == "" && e.code != "" {
		formatted.Note = e.code.Description()
	}
	if !e.startPosition.IsValid() && e.sourceCode == "" {
		return formatted
	}
	start, end := e.startPosition, e.endPosition
	formatted.Line = start.LineNumber()
	formatted.Column = start.ColumnNumber()
	if end.Line == start.Line && end.Column > start.Column {
		formatted.EndColumn = end.Column // last column covered, 1-indexed
	}
	formatted.SourceLines = []errors.SourceLineEntry{
		{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
	}
	return formatted
}

func (e *BaseParserError) Type() string                  { return e.errType }
func (e *BaseParserError) Code() errors.ErrorCode        { return e.code }
func (e *BaseParserError) Message() string               { return e.message }
func (e *BaseParserError) Cause() error                  { return e.cause }
func (e *BaseParserError) Expected() string              { return e.expected }
func (e *BaseParserError) Found() token.Type             { return e.found }
func (e *BaseParserError) File() string                  { return e.file }
func (e *BaseParserError) StartPosition() token.Position { return e.startPosition }
func (e *BaseParserError) EndPosition() token.Position   { return e.endPosition }
func (e *BaseParserError) SourceCode() string            { return e.sourceCode }
func (e *BaseParserError) Hint() string                  { return e.hint }

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

// NewSyntaxError returns a new SyntaxError populated with the given error data
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = SyntaxErrorType
	if opts.Code == "" {
		opts.Code = errors.E1003
	}
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// SyntaxError reports input the token source could not tokenize.
type SyntaxError struct {
	*BaseParserError
}

// mismatchMessage renders the canonical grammar mismatch message.
func mismatchMessage(expected string, found token.Type) string {
	return fmt.Sprintf("Expected: %s, Found: %s", expected, found)
}

// IsMismatch reports whether err is, or wraps, a grammar mismatch: a
// ParserError carrying an expected description.
func IsMismatch(err error) bool {
	var pe ParserError
	if !stderrors.As(err, &pe) {
		return false
	}
	return pe.Type() == ParseErrorType && pe.Expected() != ""
}
