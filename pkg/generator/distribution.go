package generator

import (
	"fmt"
	"sort"
)

// Strategy decides how many slips each bucket receives for a requested count
type Strategy string

const (
	// Truncate fills buckets in table order using their absolute counts and
	// stops at the requested count. Later buckets go short when the count is
	// below the table total, and the table total caps the output.
	Truncate Strategy = "truncate"

	// Proportional scales the table to the requested count with
	// largest-remainder rounding, so the output has exactly count slips.
	Proportional Strategy = "proportional"
)

// Strategies lists the accepted strategy names
var Strategies = []Strategy{Truncate, Proportional}

// ParseStrategy converts a name into a Strategy; empty means Truncate
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return Truncate, nil
	}
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown strategy: %s", name)
}

// Allocate returns the per-bucket counts for count slips
func (s Strategy) Allocate(buckets []Bucket, count int) []int {
	if s == Proportional {
		return allocateProportional(buckets, count)
	}
	return allocateTruncate(buckets, count)
}

func allocateTruncate(buckets []Bucket, count int) []int {
	counts := make([]int, len(buckets))
	remaining := count
	for i, b := range buckets {
		n := min(b.Weight, remaining)
		counts[i] = n
		remaining -= n
	}
	return counts
}

func allocateProportional(buckets []Bucket, count int) []int {
	counts := make([]int, len(buckets))
	total := totalWeight(buckets)
	if total <= 0 || count <= 0 {
		return counts
	}

	remainders := make([]int, len(buckets))
	assigned := 0
	for i, b := range buckets {
		counts[i] = count * b.Weight / total
		remainders[i] = count * b.Weight % total
		assigned += counts[i]
	}

	order := make([]int, len(buckets))
	for i := range order {
		order[i] = i
	}
	// stable keeps earlier buckets ahead on equal remainders
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for i := 0; assigned < count; i++ {
		counts[order[i%len(order)]]++
		assigned++
	}
	return counts
}
