// Package ast defines the abstract syntax tree of lambda-calculus terms.
//
// A term is one of three node kinds: a Variable, an Application of one term
// to another, or an Abstraction binding a Variable over a body term.
package ast

import (
	"unicode/utf8"

	"github.com/risor-io/lambda/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string

	termNode()
}

// Variable is a leaf node that refers to a name.
type Variable struct {
	NamePos token.Position // position of the symbol
	Name    string         // identifier name
}

// NewVariable returns a Variable with the given name and no position.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (x *Variable) termNode() {}

func (x *Variable) Pos() token.Position { return x.NamePos }

func (x *Variable) End() token.Position {
	end := x.NamePos
	end.Char += len(x.Name)
	end.Column += utf8.RuneCountInString(x.Name)
	return end
}

func (x *Variable) String() string { return x.Name }

// Application applies the function term Fn to the argument term Arg,
// written "(Fn Arg)".
type Application struct {
	Lparen token.Position // position of "("
	Fn     Node           // function position
	Arg    Node           // argument position
	Rparen token.Position // position of ")"
}

// NewApplication returns an Application of fn to arg with no positions.
func NewApplication(fn, arg Node) *Application {
	return &Application{Fn: fn, Arg: arg}
}

func (x *Application) termNode() {}

func (x *Application) Pos() token.Position { return x.Lparen }

func (x *Application) End() token.Position {
	end := x.Rparen
	end.Char++
	end.Column++
	return end
}

func (x *Application) String() string {
	return "(" + x.Fn.String() + " " + x.Arg.String() + ")"
}

// Abstraction binds Param within Body, written "λParam.Body".
type Abstraction struct {
	Lambda token.Position // position of the lambda
	Binder token.Type     // token.LAMBDA or token.AT
	Param  *Variable      // bound variable
	Body   Node           // body; extends as far right as possible
}

// NewAbstraction returns an Abstraction binding param over body with no
// positions.
func NewAbstraction(param *Variable, body Node) *Abstraction {
	return &Abstraction{Binder: token.LAMBDA, Param: param, Body: body}
}

func (x *Abstraction) termNode() {}

func (x *Abstraction) Pos() token.Position { return x.Lambda }

func (x *Abstraction) End() token.Position {
	switch {
	case x.Body != nil:
		return x.Body.End()
	case x.Param != nil:
		return x.Param.End()
	}
	return x.Lambda
}

func (x *Abstraction) String() string {
	return "λ" + x.Param.String() + "." + x.Body.String()
}
