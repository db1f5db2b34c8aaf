package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/valid8/foundation/logic"
	"github.com/msto63/valid8/internal/render"
	"github.com/msto63/valid8/internal/session"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of an argument",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}

	input, err := readInput(cmd, name)
	if err != nil {
		return exitWith(err)
	}

	tokens, err := newEngine().Tokenize(input)
	if err != nil {
		return exitWith(session.Classify(err))
	}

	render.Tokens(cmd.OutOrStdout(), tokens)
	return nil
}

// newEngine builds an engine for the inspection commands
func newEngine() *logic.Engine {
	return logic.NewEngine(logic.Options{
		Logger:         logger,
		MaxInputLength: appConfig.Evaluator.MaxInputLength,
		MaxVariables:   appConfig.Evaluator.MaxVariables,
	})
}
