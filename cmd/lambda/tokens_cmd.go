package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/risor-io/lambda/internal/lexer"
	"github.com/risor-io/lambda/parser"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, filename, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			l := lexer.New(code)
			l.SetFilename(filename)
			toks, lexErr := l.Tokens()

			// On error the last token is the one that failed.
			valid := toks
			if lexErr != nil {
				valid = toks[:len(toks)-1]
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range valid {
				pos := tok.StartPosition
				fmt.Fprintf(tw, "%d:%d\t%s\t%s\n", pos.LineNumber(), pos.ColumnNumber(), tok.Type, tok.Literal)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if lexErr != nil {
				bad := toks[len(toks)-1]
				return a.reportError(cmd.ErrOrStderr(), parser.NewSyntaxError(parser.ErrorOpts{
					Cause:         lexErr,
					Found:         bad.Type,
					File:          filename,
					StartPosition: bad.StartPosition,
					EndPosition:   bad.EndPosition,
					SourceCode:    l.GetLineText(bad),
				}))
			}
			a.log.Debug().Str("file", filename).Int("count", len(toks)).Msg("tokens listed")
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}
