package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/slippage/pkg/generator"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles [NAME...]",
		Short: "List the registered size profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = generator.List()
			}

			out := cmd.OutOrStdout()
			for i, name := range names {
				p, err := generator.Get(name)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printProfile(out, p)
			}
			return nil
		},
	}
}

func printProfile(out io.Writer, p generator.Profile) {
	fmt.Fprintf(out, "%s: %s\n", p.Name, p.Description)

	fmt.Fprintf(out, "  Slips (%d in table, length in %v, width in %v):\n",
		p.Slips.Total(), p.Slips.LengthInches, p.Slips.WidthInches)
	for _, b := range p.Slips.Buckets {
		fmt.Fprintf(out, "    %2d' x %2d'  %3d\n", b.LengthFt, b.WidthFt, b.Weight)
	}

	m := p.Members
	fmt.Fprintf(out, "  Boats (offsets %v / %v, minimum %d' x %d', %d%% permanent, %d%% hold a slip):\n",
		m.LengthOffsets, m.WidthOffsets, m.MinLengthFt, m.MinWidthFt, m.PermanentPercent, m.OccupiedPercent)
	for _, b := range m.Buckets {
		fmt.Fprintf(out, "    %2d' x %2d'  weight %d\n", b.LengthFt, b.WidthFt, b.Weight)
	}
}
