package generator

import (
	"math/rand/v2"
	"slices"

	"pkg.jsn.cam/slippage/pkg/marina"
)

// GenerateMembers builds count members. The first PermanentPercent of IDs are
// permanent and the first OccupiedPercent each take one slip from a shuffled
// copy of slipIDs until it runs dry; slipIDs itself is not modified. A
// negative count yields no members.
func GenerateMembers(r *rand.Rand, table MemberTable, count int, slipIDs []string) []marina.Member {
	count = max(count, 0)
	pool := slices.Clone(slipIDs)
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	permanent := PermanentCount(table, count)
	occupied := OccupiedCount(table, count)
	pick := newPicker(table.Buckets)

	members := make([]marina.Member, 0, count)
	for n := 1; n <= count; n++ {
		base := table.Buckets[pick.pick(r)]

		lengthFt := base.LengthFt + choose(r, table.LengthOffsets)
		widthFt := base.WidthFt + choose(r, table.WidthOffsets)
		lengthIn := choose(r, table.LengthInches)
		widthIn := choose(r, table.WidthInches)

		m := marina.Member{
			ID: marina.MemberID(n),
			Boat: marina.Dimensions{
				LengthFt: max(table.MinLengthFt, lengthFt),
				LengthIn: lengthIn,
				WidthFt:  max(table.MinWidthFt, widthFt),
				WidthIn:  widthIn,
			},
			Permanent: n <= permanent,
		}

		if n <= occupied && len(pool) > 0 {
			m.CurrentSlip = pool[0]
			pool = pool[1:]
		}

		members = append(members, m)
	}
	return members
}

// PermanentCount is floor(count * PermanentPercent / 100)
func PermanentCount(table MemberTable, count int) int {
	return count * table.PermanentPercent / 100
}

// OccupiedCount is floor(count * OccupiedPercent / 100), the cap on members
// that start out holding a slip
func OccupiedCount(table MemberTable, count int) int {
	return count * table.OccupiedPercent / 100
}
