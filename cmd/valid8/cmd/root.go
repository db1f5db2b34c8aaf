package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	v8error "github.com/msto63/valid8/foundation/core/error"
	v8log "github.com/msto63/valid8/foundation/core/log"
	"github.com/msto63/valid8/internal/render"
	"github.com/msto63/valid8/internal/session"
	"github.com/msto63/valid8/pkg/core/config"
	"github.com/msto63/valid8/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	tableFlag string
	noColor   bool
)

// loaded by the root PersistentPreRunE
var (
	appConfig *config.Config
	logger    *v8log.Logger
)

// ExitError carries the process exit status of a failed command. Err is
// printed when set.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

var rootCmd = &cobra.Command{
	Use:   "valid8",
	Short: "valid8 - Logical Argument Validator",
	Long: `valid8 checks whether the conclusion of an argument follows from its
premises by building a truth table.

Arguments are written as labelled statements:

  PREMISE: IMPLIES(rains, wet);
  PREMISE: rains;
  THEREFORE: wet;`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/valid8.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&tableFlag, "table", "", "truth table style (styled, ascii, none)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadConfig resolves the configuration and builds the logger
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.LoadFromEnv(cfgFile)
	if err != nil {
		return exitWith(err)
	}

	if tableFlag != "" {
		if _, err := render.New(tableFlag); err != nil {
			return exitWith(v8error.Wrap(err, "invalid --table").WithCode(v8error.CodeInvalidInput))
		}
		cfg.Output.Table = tableFlag
	}
	if noColor || color.NoColor {
		cfg.Output.Color = false
	}

	appConfig = cfg
	logger = logging.FromConfig(cfg, verbose, cmd.ErrOrStderr())

	if path != "" {
		logger.Debug("config loaded", v8log.String("path", path))
	}
	return nil
}

// newSession builds a session writing to out
func newSession(out io.Writer) (*session.Session, error) {
	sc, err := session.ConfigFrom(appConfig, logger, out)
	if err != nil {
		return nil, exitWith(err)
	}
	return session.New(sc), nil
}

// exitWith maps an error onto the exit status of its code
func exitWith(err error) error {
	return &ExitError{Code: v8error.GetCode(err).ExitCode(), Err: err}
}

// readInput reads a file, or stdin for "-"
func readInput(cmd *cobra.Command, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", v8error.Wrap(err, "failed to read input").
			WithCode(v8error.CodeIO).
			WithDetail("file", name)
	}
	return string(data), nil
}

func printError(cmd *cobra.Command, name string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", name, err)
}
