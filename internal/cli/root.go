// Package cli sets up the changekit command-line interface using Cobra:
// the root command, its persistent flags and the solve, count, table and
// verify subcommands.
package cli

import (
	"io"
	"log"

	"github.com/katalvlaran/changekit/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev" // set by the linker: -ldflags "-X github.com/katalvlaran/changekit/internal/cli.version=1.2.3"

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Each call has its own state, so
// tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard, "changekit: ", log.LstdFlags)}

	root := &cobra.Command{
		Use:   "changekit",
		Short: "Minimum-coin change solver",
		Long: `changekit computes the fewest coins that sum exactly to an amount,
using full dynamic programming (never a greedy shortcut), and lists the coins used.

An amount that cannot be formed is reported as "no solution" and is not an error.
Negative amounts and non-positive coins are rejected.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: search changekit.yaml in the user config dir and .)")
	pf.Int("max-amount", config.DefaultMaxAmount, "largest amount any command may build a table for (0 = no cap)")
	pf.String("order", "from-zero", "coin listing order: from-zero or from-amount")
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.BoolP("verbose", "v", false, "log progress to stderr")

	root.AddCommand(a.solveCmd(), a.countCmd(), a.tableCmd(), a.verifyCmd())

	return root
}

// setup loads configuration and wires the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		a.logger.SetOutput(cmd.ErrOrStderr())
	}
	a.logger.Printf("config: max_amount=%d order=%s output=%s", cfg.MaxAmount, cfg.Order, cfg.Output)

	return nil
}

// addChangeFlags defines the --coins/--amount pair shared by subcommands.
func addChangeFlags(cmd *cobra.Command, amountUsage string) {
	cmd.Flags().IntSliceP("coins", "c", nil, "coin denominations, comma separated (e.g. 1,2,5)")
	cmd.Flags().IntP("amount", "a", 0, amountUsage)
	_ = cmd.MarkFlagRequired("amount")
}
