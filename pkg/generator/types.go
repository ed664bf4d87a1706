// Package generator builds marina slip and member fixtures from weighted size
// tables. Every function takes its random source explicitly.
package generator

// Bucket is one nominal size class in whole feet. For slips Weight is the
// number of slips the class holds in the reference table; for boats it is a
// relative sampling weight.
type Bucket struct {
	LengthFt int `yaml:"length_ft"`
	WidthFt  int `yaml:"width_ft"`
	Weight   int `yaml:"weight"`
}

// SlipTable drives GenerateSlips
type SlipTable struct {
	Buckets []Bucket `yaml:"buckets"`

	// Inch remainders are drawn uniformly from these lists, so repeating a
	// value raises its odds
	LengthInches []int `yaml:"length_inches"`
	WidthInches  []int `yaml:"width_inches"`
}

// Total returns the sum of bucket weights
func (t SlipTable) Total() int {
	return totalWeight(t.Buckets)
}

// MemberTable drives GenerateMembers
type MemberTable struct {
	Buckets []Bucket `yaml:"buckets"`

	// Whole-foot perturbations applied to the sampled bucket
	LengthOffsets []int `yaml:"length_offsets"`
	WidthOffsets  []int `yaml:"width_offsets"`

	LengthInches []int `yaml:"length_inches"`
	WidthInches  []int `yaml:"width_inches"`

	MinLengthFt int `yaml:"min_length_ft"`
	MinWidthFt  int `yaml:"min_width_ft"`

	// PermanentPercent of members, taken from the front of the ID sequence,
	// are flagged permanent
	PermanentPercent int `yaml:"permanent_percent"`
	// OccupiedPercent of members, again from the front, are handed a slip
	// from the shuffled pool while it lasts
	OccupiedPercent int `yaml:"occupied_percent"`
}

// Profile is a complete, named set of generation tables
type Profile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Slips       SlipTable   `yaml:"slips"`
	Members     MemberTable `yaml:"members"`
}

func totalWeight(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Weight
	}
	return total
}
