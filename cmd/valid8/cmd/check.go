package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var strictExit bool

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Check arguments for validity",
	Long: `Checks every file as one argument with a fresh environment, printing
its truth table and verdict. Without files, or with "-", the argument is
read from stdin.

Exit status is 1 if any file could not be processed. With --strict-exit
it is 2 if every file was processed but an argument is invalid.

Examples:
  valid8 check modus_ponens.v8
  valid8 check --table ascii a.v8 b.v8
  echo 'PREMISE: IMPLIES(p, q); PREMISE: p; THEREFORE: q;' | valid8 check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&strictExit, "strict-exit", false, "exit with status 2 when an argument is invalid")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	s, err := newSession(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var failed, invalid int
	for _, name := range args {
		if len(args) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", name)
		}

		input, err := readInput(cmd, name)
		if err != nil {
			printError(cmd, name, err)
			failed++
			continue
		}

		outcome, err := s.Check(input)
		if err != nil {
			printError(cmd, name, err)
			failed++
			continue
		}
		if !outcome.Result.Valid {
			invalid++
		}
	}

	switch {
	case failed > 0:
		return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d arguments could not be checked", failed, len(args))}
	case strictExit && invalid > 0:
		return &ExitError{Code: 2}
	}
	return nil
}
