package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	v8ast "github.com/msto63/valid8/foundation/logic/ast"
	v8parser "github.com/msto63/valid8/foundation/logic/parser"
	"github.com/msto63/valid8/internal/session"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the syntax tree of an argument",
	Long: `Parses an argument and prints its syntax tree. Syntax errors are
listed with their positions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}

	input, err := readInput(cmd, name)
	if err != nil {
		return exitWith(err)
	}

	program, err := newEngine().Parse(input)
	if err != nil {
		var list v8parser.ErrorList
		if errors.As(err, &list) {
			for _, pe := range list {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d:%d: %s\n", name, pe.Line, pe.Column, pe.Message)
			}
			return &ExitError{Code: 1, Err: fmt.Errorf("syntax errors: %d", len(list))}
		}
		return exitWith(session.Classify(err))
	}

	fmt.Fprint(cmd.OutOrStdout(), v8ast.Dump(program))
	return nil
}
