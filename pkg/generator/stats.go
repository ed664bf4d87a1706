package generator

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"pkg.jsn.cam/slippage/pkg/marina"
)

// SizeCount is the number of slips sharing a nominal size in whole feet
type SizeCount struct {
	LengthFt int
	WidthFt  int
	Count    int
}

// Stats summarizes a generated dataset
type Stats struct {
	Slips       int
	Members     int
	Permanent   int
	WithSlip    int
	WithoutSlip int
	SlipSizes   []SizeCount // ordered by length, then width
}

// Shortfall is how many members cannot get a slip even if every slip is used
func (s Stats) Shortfall() int {
	return s.Members - s.Slips
}

// Summarize counts the dataset. It does not look at whether boats fit.
func Summarize(slips []marina.Slip, members []marina.Member) Stats {
	s := Stats{
		Slips:   len(slips),
		Members: len(members),
	}

	for _, m := range members {
		if m.Permanent {
			s.Permanent++
		}
		if m.HasSlip() {
			s.WithSlip++
		}
	}
	s.WithoutSlip = s.Members - s.WithSlip

	sizes := make(map[[2]int]int)
	for _, sl := range slips {
		sizes[[2]int{sl.Max.LengthFt, sl.Max.WidthFt}]++
	}
	for k, n := range sizes {
		s.SlipSizes = append(s.SlipSizes, SizeCount{LengthFt: k[0], WidthFt: k[1], Count: n})
	}
	sort.Slice(s.SlipSizes, func(i, j int) bool {
		a, b := s.SlipSizes[i], s.SlipSizes[j]
		if a.LengthFt != b.LengthFt {
			return a.LengthFt < b.LengthFt
		}
		return a.WidthFt < b.WidthFt
	})

	return s
}

// Print writes the statistics block
func (s Stats) Print(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nStatistics:\n")
	fmt.Fprintf(&b, "  Permanent members: %d\n", s.Permanent)
	fmt.Fprintf(&b, "  Members with current slips: %d\n", s.WithSlip)
	fmt.Fprintf(&b, "  Members without slips: %d\n", s.WithoutSlip)
	fmt.Fprintf(&b, "  Total members: %d\n", s.Members)
	fmt.Fprintf(&b, "  Total slips: %d\n", s.Slips)
	fmt.Fprintf(&b, "  Competition: %d members for %d slips\n", s.Members, s.Slips)
	fmt.Fprintf(&b, "  Expected unassigned: ~%d\n", s.Shortfall())

	if len(s.SlipSizes) > 0 {
		fmt.Fprintf(&b, "\nSlip sizes:\n")
		for _, sz := range s.SlipSizes {
			fmt.Fprintf(&b, "  %2d' x %2d': %d\n", sz.LengthFt, sz.WidthFt, sz.Count)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
