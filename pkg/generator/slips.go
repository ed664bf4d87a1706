package generator

import (
	"math/rand/v2"

	"pkg.jsn.cam/slippage/pkg/marina"
)

// GenerateSlips builds count slips from table. IDs are handed out in bucket
// order before the final shuffle, so S001 is always from the first bucket.
// A negative count yields no slips.
func GenerateSlips(r *rand.Rand, table SlipTable, count int, strategy Strategy) []marina.Slip {
	count = max(count, 0)
	counts := strategy.Allocate(table.Buckets, count)

	slips := make([]marina.Slip, 0, count)
	id := 1
	for i, b := range table.Buckets {
		for range counts[i] {
			lengthIn := choose(r, table.LengthInches)
			widthIn := choose(r, table.WidthInches)

			slips = append(slips, marina.Slip{
				ID: marina.SlipID(id),
				Max: marina.Dimensions{
					LengthFt: b.LengthFt,
					LengthIn: lengthIn,
					WidthFt:  b.WidthFt,
					WidthIn:  widthIn,
				},
			})
			id++
		}
	}

	r.Shuffle(len(slips), func(i, j int) {
		slips[i], slips[j] = slips[j], slips[i]
	})
	return slips
}
