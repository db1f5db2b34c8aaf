package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/valid8/internal/repl"
	"github.com/msto63/valid8/internal/session"
)

var replMode string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Check arguments interactively",
	Long: `Starts an interactive session. Lines are collected until one contains
THEREFORE, then the argument is checked. Type exit or quit to leave.

Modes:
  tui   - full screen terminal UI (default)
  line  - plain prompt with history`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replMode, "mode", "", "REPL mode (tui, line); default from config")
}

func runREPL(cmd *cobra.Command, args []string) error {
	sc, err := session.ConfigFrom(appConfig, logger, cmd.OutOrStdout())
	if err != nil {
		return exitWith(err)
	}

	mode := replMode
	if mode == "" {
		mode = appConfig.REPL.Mode
	}

	return repl.Run(mode, repl.Config{
		Session: sc,
		Prompt:  appConfig.REPL.Prompt,
		Output:  cmd.OutOrStdout(),
		Errors:  cmd.ErrOrStderr(),
	})
}
