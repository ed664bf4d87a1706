package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/slippage/internal/ledger"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify RUN_ID",
		Short: "Check that a run's files still match their recorded digests",
		Long: `Recompute the SHA-256 of every file a run wrote and compare it with the ledger.

Point --dir at a fresh run with the same seed and settings to confirm the
generator is still deterministic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := openLedger(cmd)
			if err != nil {
				return err
			}
			defer led.Close()

			m, err := led.Get(args[0])
			if err != nil {
				return err
			}

			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = m.Dir
			}

			out := cmd.OutOrStdout()
			mismatches := ledger.Verify(m, dir)
			for _, f := range m.Files {
				status := "ok"
				for _, mm := range mismatches {
					if mm.Name == f.Name {
						status = mm.String()
					}
				}
				fmt.Fprintf(out, "  %-28s %-8s %s\n", f.Name, humanize.Bytes(uint64(f.Bytes)), status)
			}

			if len(mismatches) > 0 {
				return fmt.Errorf("%d of %d files differ from run %s", len(mismatches), len(m.Files), m.RunID)
			}
			fmt.Fprintf(out, "Run %s verified\n", m.RunID)
			return nil
		},
	}
	ledgerFlag(cmd.Flags())
	cmd.Flags().String("dir", "", "directory holding the files (default: where the run wrote them)")
	return cmd
}
