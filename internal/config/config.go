// Package config loads CLI configuration for changekit.
//
// Precedence (lowest to highest): built-in defaults, changekit.yaml (user
// config dir, then the working directory, or an explicit --config file),
// CHANGEKIT_* environment variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/changekit/coinchange"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys, shared by defaults, environment and flag bindings.
const (
	KeyMaxAmount = "max_amount"
	KeyOrder     = "order"
	KeyOutput    = "output"
	KeyVerbose   = "verbose"
)

// DefaultMaxAmount bounds table size when nothing else is configured.
const DefaultMaxAmount = 1_000_000

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrBadOutput indicates an unknown output format.
var ErrBadOutput = errors.New("config: output must be text, json or yaml")

// Config is the resolved CLI configuration.
type Config struct {
	MaxAmount int    `mapstructure:"max_amount" yaml:"max_amount"`
	Order     string `mapstructure:"order" yaml:"order"`
	Output    string `mapstructure:"output" yaml:"output"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyMaxAmount: DefaultMaxAmount,
		KeyOrder:     coinchange.FromZero.String(),
		KeyOutput:    OutputText,
		KeyVerbose:   false,
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"max-amount": KeyMaxAmount,
	"order":      KeyOrder,
	"output":     KeyOutput,
	"verbose":    KeyVerbose,
}

// userConfigDir returns the per-user directory searched for changekit.yaml.
func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}

	return filepath.Join(dir, "changekit"), nil
}

// Load resolves configuration for cmd. configFile, when non-empty, replaces
// the search for changekit.yaml and must exist.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	// 1. Defaults
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	// 2. Config file: explicit path, or search standard locations.
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("changekit")
		v.SetConfigType("yaml")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when searching; anything else is fatal.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("error loading config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix("changekit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 4. Flags (only those the command actually defines)
	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error parsing config: %w", err)
	}

	return c, c.Validate()
}

// Validate checks field values that viper cannot type-check.
func (c Config) Validate() error {
	if c.MaxAmount < 0 {
		return fmt.Errorf("%w: %d", coinchange.ErrBadMaxAmount, c.MaxAmount)
	}
	if _, err := coinchange.ParseOrder(c.Order); err != nil {
		return err
	}
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, c.Output)
	}
}

// SolverOptions translates the configuration into coinchange options.
// Call Validate first; an unparsable order falls back to the default.
func (c Config) SolverOptions() []coinchange.Option {
	order, _ := coinchange.ParseOrder(c.Order)

	return []coinchange.Option{
		coinchange.WithMaxAmount(c.MaxAmount),
		coinchange.WithOrder(order),
	}
}
