package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := newApp()
	root := &cobra.Command{
		Use:           "lambda",
		Short:         "Parse and inspect lambda-calculus terms",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().String(keyConfig, "", "config file (default $HOME/.lambda.yaml)")
	root.PersistentFlags().Bool(keyNoColor, false, "disable colored output")
	root.PersistentFlags().String(keyLogLevel, "warn", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newParseCmd(a), newTokensCmd(a), newVersionCmd())
	return root
}

// execute runs cmd. Logging setup may lower the process-wide zerolog level;
// it is restored on return.
func execute(cmd *cobra.Command) error {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	return cmd.Execute()
}

// addInputFlags registers the flags shared by commands that read source.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "source to read instead of a file")
	cmd.Flags().Bool("stdin", false, "read source from stdin")
}

// readInput returns the source named by exactly one of -c, --stdin, or a
// file argument, together with a filename for error reports.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	codeSet := cmd.Flags().Changed("code")
	stdinSet, _ := cmd.Flags().GetBool("stdin")
	fileProvided := len(args) > 0

	count := 0
	for _, set := range []bool{codeSet, stdinSet, fileProvided} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", "", errors.New("multiple input sources specified")
	}
	if count == 0 {
		return "", "", errors.New("no input provided")
	}

	switch {
	case stdinSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	case fileProvided:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}
	code, _ := cmd.Flags().GetString("code")
	return code, "", nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lambda %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
}
