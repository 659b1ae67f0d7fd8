package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {
	case *Variable:
		// No children
	case *Application:
		if n.Fn != nil {
			Walk(v, n.Fn)
		}
		if n.Arg != nil {
			Walk(v, n.Arg)
		}
	case *Abstraction:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			switch node := n.(type) {
			case *Application:
				if node.Fn != nil && !visit(node.Fn) {
					return false
				}
				if node.Arg != nil && !visit(node.Arg) {
					return false
				}
			case *Abstraction:
				if node.Param != nil && !visit(node.Param) {
					return false
				}
				if node.Body != nil && !visit(node.Body) {
					return false
				}
			}
			return true
		}
		if root != nil {
			visit(root)
		}
	}
}

// Equal reports whether a and b have the same structure: the same node kinds
// in the same shape with the same variable names. Positions and the spelling
// of the lambda are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Variable:
		y, ok := b.(*Variable)
		if !ok || x == nil || y == nil {
			return ok && x == nil && y == nil
		}
		return x.Name == y.Name
	case *Application:
		y, ok := b.(*Application)
		if !ok || x == nil || y == nil {
			return ok && x == nil && y == nil
		}
		return Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	case *Abstraction:
		y, ok := b.(*Abstraction)
		if !ok || x == nil || y == nil {
			return ok && x == nil && y == nil
		}
		return Equal(x.Param, y.Param) && Equal(x.Body, y.Body)
	case nil:
		return b == nil
	}
	return false
}

// Size returns the number of nodes in the tree rooted at node.
func Size(node Node) int {
	n := 0
	for range Preorder(node) {
		n++
	}
	return n
}
