package main

import (
	"github.com/spf13/cobra"

	"pkg.jsn.cam/slippage/internal/config"
	"pkg.jsn.cam/slippage/internal/fixture"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics for existing fixture files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slips, _ := cmd.Flags().GetString("slips-file")
			members, _ := cmd.Flags().GetString("members-file")
			_, err := fixture.Summarize(slips, members, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().String("slips-file", config.DefaultSlipsFile, "slips CSV to read")
	cmd.Flags().String("members-file", config.DefaultMembersFile, "members CSV to read")
	return cmd
}
