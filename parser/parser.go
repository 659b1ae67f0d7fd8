// Package parser builds the abstract syntax tree (AST) of a lambda-calculus
// term from a stream of tokens.
//
// The grammar is LL(1); every decision is made on the type of the current
// token alone:
//
//	expression  := application | abstraction | variable
//	application := '(' expression expression ')'
//	abstraction := ('λ' | '@') variable '.' expression
//	variable    := SYMBOL
//
// A parser is created by calling New() with a token source as input. The
// parser should then be used only once, by calling parser.Parse() to produce
// the AST. The first grammar mismatch aborts the parse; no partial tree is
// returned and no recovery is attempted.
package parser

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/risor-io/lambda/ast"
	"github.com/risor-io/lambda/errors"
	"github.com/risor-io/lambda/internal/lexer"
	"github.com/risor-io/lambda/token"
)

// TokenSource produces tokens on demand. After the end of its input it must
// keep returning EOF tokens. A non-nil error aborts the parse.
type TokenSource interface {
	Next() (token.Token, error)
}

// Optional interfaces a TokenSource may implement to enrich error reports.
type (
	filenamer interface{ Filename() string }
	liner     interface{ GetLineText(token.Token) string }
)

// expectedExpression lists the tokens that may begin an expression.
const expectedExpression = "(, λ, @, or SYMBOL"

// Parse the provided input as a lambda-calculus term and return the AST.
// This is shorthand way to create a Lexer and Parser and then call Parse on
// that.
func Parse(ctx context.Context, input string, options ...Option) (ast.Node, error) {
	// Extract filename from options before creating the parser, so that
	// lexer positions carry it from the first token on.
	var probe Parser
	for _, opt := range options {
		opt(&probe)
	}
	l := lexer.New(input)
	if probe.filename != "" {
		l.SetFilename(probe.filename)
	}
	return New(l, options...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithTrailingInput controls what happens to tokens following a complete
// top-level expression. By default they are rejected with a "trailing input"
// error. When allow is true they are ignored; only the first of them is
// read, as lookahead.
func WithTrailingInput(allow bool) Option {
	return func(p *Parser) {
		p.allowTrailing = allow
	}
}

// WithLogger sets the logger used to trace the parse. Productions are
// logged at trace level and the outcome at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = logger
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// src supplies the tokens
	src TokenSource

	// curToken is the single token of lookahead.
	curToken token.Token

	// primeErr holds an error raised while reading the first token
	primeErr error

	// used is set by the first Parse call
	used bool

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	// accept and ignore tokens after the top-level expression
	allowTrailing bool

	log zerolog.Logger
}

// New returns a Parser reading from src. The first token is read
// immediately. The Parser borrows src and never closes it.
func New(src TokenSource, options ...Option) *Parser {
	p := &Parser{
		src:      src,
		maxDepth: DefaultMaxDepth,
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.filename == "" {
		if f, ok := src.(filenamer); ok {
			p.filename = f.Filename()
		}
	}
	// Prime the lookahead
	p.primeErr = p.nextToken()
	return p
}

// Parse consumes the token stream and returns the root of the AST. It may
// be called only once per Parser.
func (p *Parser) Parse(ctx context.Context) (ast.Node, error) {
	if p.used {
		return nil, ErrParserUsed
	}
	p.used = true
	p.ctx = ctx
	// Errors may already exist because we read a token in the constructor.
	if p.primeErr != nil {
		return nil, p.primeErr
	}
	if err := p.checkContext(); err != nil {
		return nil, err
	}
	node, err := p.parseExpression()
	if err != nil {
		p.log.Debug().Err(err).Str("file", p.filename).Msg("parse failed")
		return nil, err
	}
	if !p.allowTrailing && !p.curTokenIs(token.EOF) {
		err := p.tokenError(TrailingInputType, errors.E1011, "EOF", "")
		p.log.Debug().Err(err).Str("file", p.filename).Msg("parse failed")
		return nil, err
	}
	p.log.Debug().Stringer("ast", node).Str("file", p.filename).Msg("parse complete")
	return node, nil
}

// nextToken pulls the next token from the source into the lookahead.
func (p *Parser) nextToken() error {
	if err := p.checkContext(); err != nil {
		return err
	}
	tok, err := p.src.Next()
	p.curToken = tok
	if err != nil {
		// Errors from the token source are "syntax errors" and parsing is
		// now considered broken.
		return NewSyntaxError(ErrorOpts{
			Cause:         err,
			Found:         tok.Type,
			File:          p.filename,
			StartPosition: tok.StartPosition,
			EndPosition:   tok.EndPosition,
			SourceCode:    p.lineText(tok),
		})
	}
	p.log.Trace().Stringer("token", tok).Msg("advance")
	return nil
}

// eat consumes the current token if it has type t. Otherwise it returns a
// mismatch error and consumes nothing.
func (p *Parser) eat(t token.Type) error {
	if p.curTokenIs(t) {
		return p.nextToken()
	}
	return p.mismatch(t.String())
}

// parseExpression dispatches on the lookahead type.
func (p *Parser) parseExpression() (ast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.tokenError(ParseErrorType, errors.E1009, "", "maximum nesting depth exceeded")
	}
	p.log.Trace().Stringer("token", p.curToken).Int("depth", p.depth).Msg("expression")

	switch p.curToken.Type {
	case token.LPAREN:
		app, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		return app, nil
	case token.LAMBDA, token.AT:
		abs, err := p.parseAbstraction()
		if err != nil {
			return nil, err
		}
		return abs, nil
	case token.SYMBOL:
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, p.mismatch(expectedExpression)
	}
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	if !p.curTokenIs(token.SYMBOL) {
		return nil, p.mismatch(token.SYMBOL.String())
	}
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	v := ast.NewVariable(tok.Literal)
	v.NamePos = tok.StartPosition
	return v, nil
}

func (p *Parser) parseApplication() (*ast.Application, error) {
	if !p.curTokenIs(token.LPAREN) {
		return nil, p.mismatch(token.LPAREN.String())
	}
	lparen := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	fn, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	rparen := p.curToken
	if err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	app := ast.NewApplication(fn, arg)
	app.Lparen = lparen.StartPosition
	app.Rparen = rparen.StartPosition
	return app, nil
}

func (p *Parser) parseAbstraction() (*ast.Abstraction, error) {
	if !p.curToken.Type.IsLambda() {
		return nil, p.mismatch("λ or @")
	}
	lambda := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	param, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.PERIOD); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	abs := ast.NewAbstraction(param, body)
	abs.Lambda = lambda.StartPosition
	abs.Binder = lambda.Type
	return abs, nil
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// mismatch reports that the current token cannot continue the active
// production.
func (p *Parser) mismatch(expected string) error {
	code := errors.E1001
	if expected == token.RPAREN.String() && p.curTokenIs(token.EOF) {
		code = errors.E1007
	}
	return p.tokenError(ParseErrorType, code, expected, "")
}

// tokenError builds an error located at the current token. When expected is
// set the message is the canonical "Expected: X, Found: Y" form.
func (p *Parser) tokenError(errType string, code errors.ErrorCode, expected, msg string) *BaseParserError {
	tok := p.curToken
	if expected != "" {
		msg = mismatchMessage(expected, tok.Type)
	}
	return NewParserError(ErrorOpts{
		ErrType:       errType,
		Code:          code,
		Message:       msg,
		Expected:      expected,
		Found:         tok.Type,
		File:          p.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.lineText(tok),
		Hint:          hintFor(expected, tok.Type),
	})
}

// checkContext returns an error if the parsing context has been cancelled.
func (p *Parser) checkContext() error {
	if p.ctx == nil {
		return nil
	}
	select {
	case <-p.ctx.Done():
		return NewParserError(ErrorOpts{
			ErrType: ContextErrorType,
			Code:    errors.E9001,
			Cause:   p.ctx.Err(),
			File:    p.filename,
		})
	default:
		return nil
	}
}

func (p *Parser) lineText(tok token.Token) string {
	if l, ok := p.src.(liner); ok {
		return l.GetLineText(tok)
	}
	return ""
}

func hintFor(expected string, found token.Type) string {
	switch {
	case expected == ")" && found == token.EOF:
		return "add the missing ')' to close the application"
	case expected == ")":
		return "an application takes exactly two expressions; nest them to pass more arguments, e.g. ((f a) b)"
	case expected == "." && found == token.SYMBOL:
		return "an abstraction binds exactly one variable; write λx.λy.body to bind several"
	case expected == expectedExpression && found == token.EOF:
		return "the input ended where an expression was expected"
	case expected == "EOF":
		return "wrap the terms in parentheses to apply one to another, e.g. (f a)"
	}
	return ""
}
