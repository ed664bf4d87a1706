package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slipgen",
		Short: "Generate marina slip and member CSV fixtures",
		Long: `slipgen writes two CSV fixtures for slip-assignment testing: a marina's
slips and the boat-owning members competing for them.

Run without arguments it uses seed 42, writes 200 slips to
complex_test_slips.csv and 225 members to complex_test_members.csv in the
current directory, then prints summary statistics.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runGenerate,
	}

	root.PersistentFlags().String("config", "", "YAML config file (default $SLIPGEN_CONFIG)")
	root.PersistentFlags().String("env-file", "", "dotenv file to load (default .env)")
	addGenerateFlags(root)

	root.AddCommand(
		newGenerateCmd(),
		newProfilesCmd(),
		newHistoryCmd(),
		newVerifyCmd(),
		newStatsCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
