package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	v8error "github.com/msto63/valid8/foundation/core/error"
)

// Limits enforced by Validate
const (
	// HardMaxVariables is the largest accepted evaluator.max_variables
	HardMaxVariables = 24
	// HardMaxInputLength is the largest accepted evaluator.max_input_length (1 MiB)
	HardMaxInputLength = 1 << 20
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "VALID8_CONFIG"

// Config represents the complete valid8 configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Evaluator EvaluatorConfig `toml:"evaluator" yaml:"evaluator"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
	REPL      REPLConfig      `toml:"repl" yaml:"repl"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EvaluatorConfig bounds the work done for one argument
type EvaluatorConfig struct {
	MaxVariables   int `toml:"max_variables" yaml:"max_variables"`
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// OutputConfig selects how truth tables and verdicts are printed
type OutputConfig struct {
	Table string `toml:"table" yaml:"table"`
	Color bool   `toml:"color" yaml:"color"`
}

// REPLConfig holds interactive mode settings
type REPLConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Mode   string `toml:"mode" yaml:"mode"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "console",
		},
		Evaluator: EvaluatorConfig{
			MaxVariables:   16,
			MaxInputLength: 64 * 1024,
		},
		Output: OutputConfig{
			Table: "styled",
			Color: true,
		},
		REPL: REPLConfig{
			Prompt: "valid8> ",
			Mode:   "tui",
		},
	}
}

// Load loads a configuration file. The format follows the extension:
// .toml, or .yaml/.yml. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, v8error.Wrap(err, "config file not found").
				WithCode(v8error.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, v8error.Wrap(err, "failed to read config").
			WithCode(v8error.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, v8error.Newf("unsupported config format %q", ext).
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, v8error.Wrap(err, "failed to parse config").
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// DefaultPaths returns the files searched when no path is given, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/valid8.toml",
		"./valid8.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "valid8", "config.toml"))
	}
	return paths
}

// Resolve returns the config file to use: explicit, then $VALID8_CONFIG,
// then the first existing default path. An empty result means defaults.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromEnv loads .env if present, reads the resolved config file (or
// the defaults), applies VALID8_* overrides and validates the result.
// It returns the path used, empty for built-in defaults.
func LoadFromEnv(explicit string) (*Config, string, error) {
	// a missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", v8error.Wrap(err, "failed to load .env").
			WithCode(v8error.CodeConfigError)
	}

	path := Resolve(explicit)

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// ApplyEnv applies VALID8_* environment overrides
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("VALID8_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv("VALID8_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv("VALID8_TABLE"); v != "" {
		c.Output.Table = v
	}
	if v := os.Getenv("VALID8_MAX_VARIABLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return v8error.Wrap(err, "VALID8_MAX_VARIABLES must be an integer").
				WithCode(v8error.CodeInvalidConfig)
		}
		c.Evaluator.MaxVariables = n
	}
	if isTruthy(os.Getenv("VALID8_DEBUG")) || isTruthy(os.Getenv("VALID8_VERBOSE")) {
		c.General.LogLevel = "debug"
	}
	return nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// applyDefaults refills string settings an explicit empty value cleared
func (c *Config) applyDefaults() {
	def := Default()

	if c.General.LogLevel == "" {
		c.General.LogLevel = def.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = def.General.LogFormat
	}
	if c.Evaluator.MaxVariables == 0 {
		c.Evaluator.MaxVariables = def.Evaluator.MaxVariables
	}
	if c.Evaluator.MaxInputLength == 0 {
		c.Evaluator.MaxInputLength = def.Evaluator.MaxInputLength
	}
	if c.Output.Table == "" {
		c.Output.Table = def.Output.Table
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = def.REPL.Prompt
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = def.REPL.Mode
	}
}

// Validate rejects unknown enum values and out-of-range limits
func (c *Config) Validate() error {
	check := func(field, value string, allowed ...string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return v8error.Newf("invalid %s %q, expected one of %s", field, value, strings.Join(allowed, ", ")).
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("field", field)
	}

	if err := check("general.log_level", c.General.LogLevel, "trace", "debug", "info", "warn", "error", "fatal"); err != nil {
		return err
	}
	if err := check("general.log_format", c.General.LogFormat, "json", "text", "console", "logfmt"); err != nil {
		return err
	}
	if err := check("output.table", c.Output.Table, "styled", "ascii", "none"); err != nil {
		return err
	}
	if err := check("repl.mode", c.REPL.Mode, "tui", "line"); err != nil {
		return err
	}

	if c.Evaluator.MaxVariables < 1 || c.Evaluator.MaxVariables > HardMaxVariables {
		return v8error.New(fmt.Sprintf("evaluator.max_variables must be between 1 and %d, got %d",
			HardMaxVariables, c.Evaluator.MaxVariables)).
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("field", "evaluator.max_variables")
	}
	if c.Evaluator.MaxInputLength < 1 || c.Evaluator.MaxInputLength > HardMaxInputLength {
		return v8error.New(fmt.Sprintf("evaluator.max_input_length must be between 1 and %d, got %d",
			HardMaxInputLength, c.Evaluator.MaxInputLength)).
			WithCode(v8error.CodeInvalidConfig).
			WithDetail("field", "evaluator.max_input_length")
	}

	return nil
}
