package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/risor-io/lambda/ast"
	"github.com/risor-io/lambda/errors"
	"github.com/risor-io/lambda/parser"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a term and print its syntax tree",
		Long: `Parse a lambda-calculus term and print it.

Output formats:
  text  the term in canonical form, e.g. λx.(x y)
  tree  one node per line, indented by depth
  json  the syntax tree as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP(keyOutput, "o", "text", "output format: text, tree, or json")
	cmd.Flags().Int(keyMaxDepth, parser.DefaultMaxDepth, "maximum nesting depth")
	cmd.Flags().Bool(keyAllowTrailing, false, "ignore tokens after the term")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	code, filename, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	node, err := parser.Parse(context.Background(), code,
		parser.WithFilename(filename),
		parser.WithMaxDepth(a.v.GetInt(keyMaxDepth)),
		parser.WithTrailingInput(a.v.GetBool(keyAllowTrailing)),
		parser.WithLogger(a.log),
	)
	if err != nil {
		return a.reportError(cmd.ErrOrStderr(), err)
	}

	out := cmd.OutOrStdout()
	switch format := strings.ToLower(a.v.GetString(keyOutput)); format {
	case "", "text":
		fmt.Fprintln(out, node.String())
	case "tree":
		printTree(out, node, a.useColor)
	case "json":
		data, err := a.formatJSON(nodeToJSON(node))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}

// reportError prints a parse failure with source context.
func (a *app) reportError(w io.Writer, err error) error {
	if fe, ok := err.(errors.FormattableError); ok {
		formatted := fe.ToFormatted()
		a.log.Debug().
			Stringer("code", formatted.Code).
			Str("category", formatted.Code.Category()).
			Msg("reporting error")
		fmt.Fprint(w, errors.NewFormatter(a.useColor).Format(formatted))
		return errReported
	}
	return err
}

// jsonNode is one node of the JSON syntax tree.
type jsonNode struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Binder string    `json:"binder,omitempty"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
	Fn     *jsonNode `json:"fn,omitempty"`
	Arg    *jsonNode `json:"arg,omitempty"`
	Param  *jsonNode `json:"param,omitempty"`
	Body   *jsonNode `json:"body,omitempty"`
}

func nodeToJSON(node ast.Node) *jsonNode {
	if node == nil {
		return nil
	}
	pos := node.Pos()
	result := &jsonNode{Line: pos.LineNumber(), Column: pos.ColumnNumber()}
	switch n := node.(type) {
	case *ast.Variable:
		result.Type = "Variable"
		result.Name = n.Name
	case *ast.Application:
		result.Type = "Application"
		result.Fn = nodeToJSON(n.Fn)
		result.Arg = nodeToJSON(n.Arg)
	case *ast.Abstraction:
		result.Type = "Abstraction"
		result.Binder = n.Binder.String()
		result.Param = nodeToJSON(n.Param)
		result.Body = nodeToJSON(n.Body)
	}
	return result
}

func (a *app) formatJSON(v any) ([]byte, error) {
	if a.useColor {
		return prettyjson.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

var (
	treeKind = color.New(color.FgCyan, color.Bold)
	treeName = color.New(color.FgGreen)
	treePos  = color.New(color.FgHiBlack)
)

// printTree writes one line per node, children indented under parents.
func printTree(w io.Writer, root ast.Node, useColor bool) {
	paint := func(c *color.Color, s string) string {
		if !useColor {
			return s
		}
		return c.Sprint(s)
	}
	var walk func(n ast.Node, depth int)
	walk = func(n ast.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		pos := n.Pos()
		loc := paint(treePos, fmt.Sprintf("%d:%d", pos.LineNumber(), pos.ColumnNumber()))
		switch node := n.(type) {
		case *ast.Variable:
			fmt.Fprintf(w, "%s%s %s %s\n", indent, paint(treeKind, "Variable"), paint(treeName, node.Name), loc)
		case *ast.Application:
			fmt.Fprintf(w, "%s%s %s\n", indent, paint(treeKind, "Application"), loc)
			walk(node.Fn, depth+1)
			walk(node.Arg, depth+1)
		case *ast.Abstraction:
			fmt.Fprintf(w, "%s%s %s %s\n", indent, paint(treeKind, "Abstraction"), paint(treeName, node.Binder.String()+node.Param.Name), loc)
			walk(node.Body, depth+1)
		}
	}
	walk(root, 0)
}
