package generator

import (
	"math/rand/v2"
	"sort"
)

// picker does weighted selection over buckets using a cumulative table
type picker struct {
	cumulative []int
	total      int
}

func newPicker(buckets []Bucket) *picker {
	p := &picker{cumulative: make([]int, len(buckets))}
	for i, b := range buckets {
		p.total += b.Weight
		p.cumulative[i] = p.total
	}
	return p
}

// pick returns a bucket index; weights must be positive
func (p *picker) pick(r *rand.Rand) int {
	roll := r.IntN(p.total) // [0,total)
	return sort.Search(len(p.cumulative), func(i int) bool {
		return roll < p.cumulative[i]
	})
}

// choose draws one element uniformly from options
func choose(r *rand.Rand, options []int) int {
	return options[r.IntN(len(options))]
}
