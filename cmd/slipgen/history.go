package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/slippage/internal/ledger"
)

var errNoLedger = errors.New("no ledger configured: pass --ledger or set SLIPGEN_LEDGER")

func openLedger(cmd *cobra.Command) (*ledger.Ledger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Ledger == "" {
		return nil, errNoLedger
	}
	return ledger.Open(cfg.Ledger)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := openLedger(cmd)
			if err != nil {
				return err
			}
			defer led.Close()

			runs, err := led.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			fmt.Fprintf(out, "%-36s %-20s %-8s %-10s %-12s %s\n", "RUN ID", "CREATED", "SEED", "PROFILE", "STRATEGY", "SLIPS/MEMBERS")
			fmt.Fprintln(out, "──────────────────────────────────────────────────────────────────────────────────────────────────────")
			for _, m := range runs {
				fmt.Fprintf(out, "%-36s %-20s %-8d %-10s %-12s %d/%d\n",
					m.RunID,
					m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					m.Seed,
					m.Profile,
					m.Strategy,
					m.Slips,
					m.Members)
			}
			return nil
		},
	}
	ledgerFlag(cmd.Flags())
	return cmd
}
