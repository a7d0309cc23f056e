// Package cli is the command tree of the recurse demo binary: a menu that
// runs every family's demonstrations in order, and one command per
// algorithm for single invocations. Arguments are parsed and checked
// against the configured max_input before they reach the library.
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurse/internal/config"
	"github.com/katalvlaran/recurse/internal/logger"
)

var version = "dev"

// ErrInputTooLarge is returned when an argument exceeds max_input.
var ErrInputTooLarge = errors.New("cli: argument above max_input")

var (
	configPath  string
	verboseFlag bool
	colorFlag   string
)

// Settings and output styles resolved by loadConfig.
var (
	cfg    = config.Default()
	styles = plainStyles()
)

var rootCmd = &cobra.Command{
	Use:   "recurse",
	Short: "Run classic recursive algorithms and their iterative siblings",
	Long: `recurse demonstrates linear, binary, tail, divide-and-conquer and
sequence recursion. Run "recurse menu" for the full walkthrough or call a
single algorithm, e.g. "recurse factorial 10".`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "recurse.toml", "path to the TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "trace each library call on stderr")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "colour mode: auto, always or never (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if colorFlag != "" {
		loaded.Color = colorFlag
		if err = loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	logger.SetVerbose(cfg.Verbose || verboseFlag)
	logger.Debug("config: path=%s max_input=%d families=%v", configPath, cfg.MaxInput, cfg.Families)
	styles = newStyles(cmd.OutOrStdout(), cfg.Color)

	return nil
}

// parseInt parses a command argument and applies the max_input bound.
func parseInt(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, arg)
	}
	if n > cfg.MaxInput || n < -cfg.MaxInput {
		logger.Warn("%s=%d rejected, max_input=%d", name, n, cfg.MaxInput)
		return 0, fmt.Errorf("%s=%d: %w (%d)", name, n, ErrInputTooLarge, cfg.MaxInput)
	}

	return n, nil
}
