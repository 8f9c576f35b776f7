package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/changekit/coinchange"
	"github.com/spf13/cobra"
)

// solveCmd prints one optimal coin list for an amount.
func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the fewest coins summing to an amount",
		Example: `  changekit solve --coins 1,2,5 --amount 11
  changekit solve -c 2,4 -a 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			denoms, _ := cmd.Flags().GetIntSlice("coins")
			amount, _ := cmd.Flags().GetInt("amount")
			check, _ := cmd.Flags().GetBool("verify")

			a.logger.Printf("solve: coins=%v amount=%d", denoms, amount)
			coins, ok, err := coinchange.Solve(denoms, amount, a.cfg.SolverOptions()...)
			if err != nil {
				return fmt.Errorf("solve failed: %w", err)
			}
			if ok && check {
				if err = coinchange.Verify(denoms, amount, coins); err != nil {
					return fmt.Errorf("self-check failed: %w", err)
				}
				a.logger.Printf("solve: self-check passed")
			}

			rep := newChangeReport(amount, coins, ok)

			return a.render(cmd.OutOrStdout(), rep, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, rep.text())
				return err
			})
		},
	}
	addChangeFlags(cmd, "target amount (non-negative)")
	cmd.Flags().Bool("verify", false, "re-check the result with an independent sum/membership check")

	return cmd
}

// countCmd prints only the minimum number of coins.
func (a *app) countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the minimum number of coins for an amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			denoms, _ := cmd.Flags().GetIntSlice("coins")
			amount, _ := cmd.Flags().GetInt("amount")

			a.logger.Printf("count: coins=%v amount=%d", denoms, amount)
			n, ok, err := coinchange.Count(denoms, amount, a.cfg.SolverOptions()...)
			if err != nil {
				return fmt.Errorf("count failed: %w", err)
			}

			rep := countReport{Amount: amount, Feasible: ok, Count: n}

			return a.render(cmd.OutOrStdout(), rep, func(w io.Writer) error {
				if !ok {
					_, err := fmt.Fprintln(w, noSolution)
					return err
				}
				_, err := fmt.Fprintln(w, n)
				return err
			})
		},
	}
	addChangeFlags(cmd, "target amount (non-negative)")

	return cmd
}

// tableCmd prints the optimum for every amount 0..--amount from one table.
func (a *app) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the optimal change for every amount up to a limit",
		Example: `  changekit table --coins 1,3,4 --amount 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			denoms, _ := cmd.Flags().GetIntSlice("coins")
			max, _ := cmd.Flags().GetInt("amount")

			a.logger.Printf("table: coins=%v max=%d", denoms, max)
			tbl, err := coinchange.Build(denoms, max, a.cfg.SolverOptions()...)
			if err != nil {
				return fmt.Errorf("table failed: %w", err)
			}

			rows := make([]changeReport, 0, tbl.Max()+1)
			for amount := 0; amount <= tbl.Max(); amount++ {
				coins, ok, err := tbl.Coins(amount)
				if err != nil {
					return fmt.Errorf("table failed at %d: %w", amount, err)
				}
				rows = append(rows, newChangeReport(amount, coins, ok))
			}

			return a.render(cmd.OutOrStdout(), rows, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "AMOUNT\tCOUNT\tCOINS")
				for _, r := range rows {
					if !r.Feasible {
						fmt.Fprintf(tw, "%d\t-\t-\n", r.Amount)
						continue
					}
					fmt.Fprintf(tw, "%d\t%d\t%s\n", r.Amount, r.Count, joinInts(r.Coins, " "))
				}
				return tw.Flush()
			})
		},
	}
	addChangeFlags(cmd, "largest amount to tabulate (non-negative)")

	return cmd
}

// verifyCmd checks a proposed change and reports whether it is minimal.
func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a proposed change is valid and minimal",
		Example: `  changekit verify --coins 1,2,5 --amount 11 --use 5,2,2,2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			denoms, _ := cmd.Flags().GetIntSlice("coins")
			amount, _ := cmd.Flags().GetInt("amount")
			use, _ := cmd.Flags().GetIntSlice("use")

			a.logger.Printf("verify: coins=%v amount=%d use=%v", denoms, amount, use)
			if err := coinchange.Verify(denoms, amount, use); err != nil {
				return fmt.Errorf("invalid change: %w", err)
			}
			n, _, err := coinchange.Count(denoms, amount, a.cfg.SolverOptions()...)
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}

			// a valid change exists (use), so the amount is feasible and n is the minimum
			rep := verifyReport{
				Amount:  amount,
				Coins:   use,
				Valid:   true,
				Optimal: len(use) == n,
				Minimum: n,
			}

			return a.render(cmd.OutOrStdout(), rep, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, rep.text())
				return err
			})
		},
	}
	addChangeFlags(cmd, "target amount (non-negative)")
	cmd.Flags().IntSliceP("use", "u", nil, "proposed coins, comma separated")

	return cmd
}
