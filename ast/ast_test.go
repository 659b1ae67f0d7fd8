package ast

import (
	"testing"

	"github.com/risor-io/lambda/token"
	"github.com/stretchr/testify/require"
)

// (λx.(x y) z)
func sample() *Application {
	x := &Variable{NamePos: token.Position{Char: 2, Column: 2}, Name: "x"}
	body := &Application{
		Lparen: token.Position{Char: 4, Column: 4},
		Fn:     &Variable{NamePos: token.Position{Char: 5, Column: 5}, Name: "x"},
		Arg:    &Variable{NamePos: token.Position{Char: 7, Column: 7}, Name: "y"},
		Rparen: token.Position{Char: 8, Column: 8},
	}
	return &Application{
		Lparen: token.Position{},
		Fn: &Abstraction{
			Lambda: token.Position{Char: 1, Column: 1},
			Binder: token.LAMBDA,
			Param:  x,
			Body:   body,
		},
		Arg:    &Variable{NamePos: token.Position{Char: 10, Column: 10}, Name: "z"},
		Rparen: token.Position{Char: 11, Column: 11},
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "x", NewVariable("x").String())
	require.Equal(t, "(f a)", NewApplication(NewVariable("f"), NewVariable("a")).String())
	require.Equal(t, "λx.x", NewAbstraction(NewVariable("x"), NewVariable("x")).String())
	require.Equal(t, "(λx.(x y) z)", sample().String())

	at := &Abstraction{Binder: token.AT, Param: NewVariable("y"), Body: NewVariable("y")}
	require.Equal(t, "λy.y", at.String())
}

func TestConstructorsStoreArguments(t *testing.T) {
	f := NewVariable("f")
	a := NewVariable("a")
	app := NewApplication(f, a)
	require.Same(t, f, app.Fn)
	require.Same(t, a, app.Arg)

	body := NewVariable("x")
	param := NewVariable("x")
	abs := NewAbstraction(param, body)
	require.Same(t, param, abs.Param)
	require.Same(t, body, abs.Body)
	require.Equal(t, token.LAMBDA, abs.Binder)
}

func TestPositions(t *testing.T) {
	root := sample()
	require.Equal(t, 0, root.Pos().Char)
	require.Equal(t, 12, root.End().Char)

	abs := root.Fn.(*Abstraction)
	require.Equal(t, 1, abs.Pos().Char)
	require.Equal(t, 9, abs.End().Char)

	v := &Variable{NamePos: token.Position{Char: 3, Column: 3}, Name: "λé"}
	require.Equal(t, 3+len("λé"), v.End().Char)
	require.Equal(t, 5, v.End().Column)
}

func TestAbstractionEndWithoutBody(t *testing.T) {
	param := &Variable{NamePos: token.Position{Char: 1, Column: 1}, Name: "x"}
	abs := NewAbstraction(param, nil)
	require.NotPanics(t, func() { abs.End() })
	require.Equal(t, 2, abs.End().Char)

	bare := &Abstraction{Lambda: token.Position{Char: 4}}
	require.Equal(t, 4, bare.End().Char)
}

func TestWalk(t *testing.T) {
	var visited []string
	Inspect(sample(), func(n Node) bool {
		switch node := n.(type) {
		case *Application:
			visited = append(visited, "Application")
		case *Abstraction:
			visited = append(visited, "Abstraction")
		case *Variable:
			visited = append(visited, "Variable:"+node.Name)
		}
		return true
	})
	expected := []string{
		"Application",
		"Abstraction",
		"Variable:x",
		"Application",
		"Variable:x",
		"Variable:y",
		"Variable:z",
	}
	require.Equal(t, expected, visited)
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(sample(), func(n Node) bool {
		count++
		_, isAbs := n.(*Abstraction)
		return !isAbs
	})
	// root, abstraction (children skipped), z
	require.Equal(t, 3, count)
}

func TestPreorder(t *testing.T) {
	var names []string
	for n := range Preorder(sample()) {
		if v, ok := n.(*Variable); ok {
			names = append(names, v.Name)
		}
	}
	require.Equal(t, []string{"x", "x", "y", "z"}, names)
	require.Equal(t, 7, Size(sample()))

	var first Node
	for n := range Preorder(sample()) {
		first = n
		break
	}
	require.IsType(t, &Application{}, first)
	require.Equal(t, 0, Size(nil))
}

func TestEqual(t *testing.T) {
	a := sample()
	b := NewApplication(
		NewAbstraction(NewVariable("x"),
			NewApplication(NewVariable("x"), NewVariable("y"))),
		NewVariable("z"),
	)
	require.True(t, Equal(a, b))
	require.True(t, Equal(b, a))

	b.Fn.(*Abstraction).Binder = token.AT
	require.True(t, Equal(a, b), "binder spelling is ignored")

	c := NewApplication(NewVariable("z"), b.Fn)
	require.False(t, Equal(a, c), "argument order matters")

	require.False(t, Equal(NewVariable("x"), NewVariable("y")))
	require.False(t, Equal(NewVariable("x"), NewAbstraction(NewVariable("x"), NewVariable("x"))))
	require.True(t, Equal(nil, nil))
	require.False(t, Equal(NewVariable("x"), nil))
}
