package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile wraps every Validate failure
var ErrInvalidProfile = errors.New("invalid profile")

// ComplexProfile is the reference marina: 200 slips across eight classes and
// a boat population sized slightly under the slips so boats compete for them.
func ComplexProfile() Profile {
	return Profile{
		Name:        "complex",
		Description: "200-slip marina with undersized boats competing for medium slips",
		Slips: SlipTable{
			Buckets: []Bucket{
				{LengthFt: 18, WidthFt: 7, Weight: 15},
				{LengthFt: 20, WidthFt: 8, Weight: 30},
				{LengthFt: 22, WidthFt: 9, Weight: 40},
				{LengthFt: 25, WidthFt: 10, Weight: 50},
				{LengthFt: 28, WidthFt: 11, Weight: 35},
				{LengthFt: 30, WidthFt: 12, Weight: 20},
				{LengthFt: 35, WidthFt: 14, Weight: 8},
				{LengthFt: 40, WidthFt: 16, Weight: 2},
			},
			LengthInches: []int{0, 0, 0, 6},
			WidthInches:  []int{0, 0, 0, 0, 6},
		},
		Members: MemberTable{
			Buckets: []Bucket{
				{LengthFt: 17, WidthFt: 6, Weight: 25},
				{LengthFt: 19, WidthFt: 7, Weight: 35},
				{LengthFt: 21, WidthFt: 8, Weight: 40},
				{LengthFt: 24, WidthFt: 9, Weight: 50},
				{LengthFt: 27, WidthFt: 10, Weight: 40},
				{LengthFt: 29, WidthFt: 11, Weight: 25},
				{LengthFt: 34, WidthFt: 13, Weight: 8},
				{LengthFt: 39, WidthFt: 15, Weight: 2},
			},
			LengthOffsets:    []int{-1, 0, 0, 1},
			WidthOffsets:     []int{-1, 0, 0, 0},
			LengthInches:     []int{0, 0, 0, 6},
			WidthInches:      []int{0, 0, 0, 6},
			MinLengthFt:      15,
			MinWidthFt:       6,
			PermanentPercent: 10,
			OccupiedPercent:  75,
		},
	}
}

// BalancedProfile draws boats from the slip size classes themselves, so the
// only pressure on the assignment comes from the member/slip ratio.
func BalancedProfile() Profile {
	p := ComplexProfile()
	p.Name = "balanced"
	p.Description = "boats drawn from the slip size classes with no undersizing"
	p.Members.Buckets = append([]Bucket(nil), p.Slips.Buckets...)
	p.Members.LengthOffsets = []int{0}
	p.Members.WidthOffsets = []int{0}
	p.Members.MinLengthFt = 0
	p.Members.MinWidthFt = 0
	return p
}

// Validate checks that every table can be sampled
func (p Profile) Validate() error {
	if err := validateBuckets("slips", p.Slips.Buckets); err != nil {
		return err
	}
	if err := validateBuckets("members", p.Members.Buckets); err != nil {
		return err
	}

	options := []struct {
		name string
		opts []int
	}{
		{"slips.length_inches", p.Slips.LengthInches},
		{"slips.width_inches", p.Slips.WidthInches},
		{"members.length_offsets", p.Members.LengthOffsets},
		{"members.width_offsets", p.Members.WidthOffsets},
		{"members.length_inches", p.Members.LengthInches},
		{"members.width_inches", p.Members.WidthInches},
	}
	for _, o := range options {
		if len(o.opts) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidProfile, o.name)
		}
	}

	percents := []struct {
		name string
		pct  int
	}{
		{"members.permanent_percent", p.Members.PermanentPercent},
		{"members.occupied_percent", p.Members.OccupiedPercent},
	}
	for _, pc := range percents {
		if pc.pct < 0 || pc.pct > 100 {
			return fmt.Errorf("%w: %s must be within 0..100, got %d", ErrInvalidProfile, pc.name, pc.pct)
		}
	}
	return nil
}

func validateBuckets(table string, buckets []Bucket) error {
	if len(buckets) == 0 {
		return fmt.Errorf("%w: %s has no buckets", ErrInvalidProfile, table)
	}
	for i, b := range buckets {
		if b.Weight <= 0 {
			return fmt.Errorf("%w: %s bucket %d has weight %d", ErrInvalidProfile, table, i, b.Weight)
		}
		if b.LengthFt <= 0 || b.WidthFt <= 0 {
			return fmt.Errorf("%w: %s bucket %d has size %dx%d", ErrInvalidProfile, table, i, b.LengthFt, b.WidthFt)
		}
	}
	return nil
}

// LoadProfile reads a YAML profile. Anything the file leaves out keeps the
// ComplexProfile value; a missing name falls back to the file's base name.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	p := ComplexProfile()
	p.Name = ""
	p.Description = ""
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
