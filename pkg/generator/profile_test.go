package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"balanced", "complex"}, List())

	p, err := Get("")
	require.NoError(t, err)
	assert.Equal(t, "complex", p.Name)
	assert.Equal(t, 200, p.Slips.Total())

	_, err = Get("nope")
	assert.Error(t, err)

	for _, name := range List() {
		p, err := Get(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestRegistryFactoriesReturnCopies(t *testing.T) {
	a, _ := Get("complex")
	a.Slips.Buckets[0].Weight = 999

	b, _ := Get("complex")
	assert.Equal(t, 15, b.Slips.Buckets[0].Weight)
}

func TestRegister(t *testing.T) {
	Register("tiny", func() Profile {
		p := ComplexProfile()
		p.Name = "tiny"
		p.Slips.Buckets = p.Slips.Buckets[:1]
		return p
	})
	t.Cleanup(func() { delete(Registry, "tiny") })

	p, err := Get("tiny")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Slips.Total())
	assert.Contains(t, List(), "tiny")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{"no slip buckets", func(p *Profile) { p.Slips.Buckets = nil }},
		{"no member buckets", func(p *Profile) { p.Members.Buckets = nil }},
		{"zero weight", func(p *Profile) { p.Members.Buckets[2].Weight = 0 }},
		{"zero size", func(p *Profile) { p.Slips.Buckets[0].WidthFt = 0 }},
		{"empty inch options", func(p *Profile) { p.Slips.WidthInches = nil }},
		{"empty offsets", func(p *Profile) { p.Members.LengthOffsets = []int{} }},
		{"permanent over 100", func(p *Profile) { p.Members.PermanentPercent = 101 }},
		{"negative occupancy", func(p *Profile) { p.Members.OccupiedPercent = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComplexProfile()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProfile)
		})
	}
}

func TestValidateReportsFirstEmptyList(t *testing.T) {
	for range 20 {
		p := ComplexProfile()
		p.Slips.WidthInches = nil
		p.Members.LengthOffsets = nil
		p.Members.WidthInches = nil
		p.Members.PermanentPercent = 200
		p.Members.OccupiedPercent = -1

		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slips.width_inches is empty")

		p.Slips.WidthInches = []int{0}
		p.Members.LengthOffsets = []int{0}
		p.Members.WidthInches = []int{0}
		assert.Contains(t, p.Validate().Error(), "members.permanent_percent")
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "crowded.yaml")
		data := `
description: twice the boats per slip
members:
  occupied_percent: 50
  buckets:
    - {length_ft: 30, width_ft: 12, weight: 1}
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "crowded", p.Name)
		assert.Equal(t, "twice the boats per slip", p.Description)
		assert.Equal(t, 50, p.Members.OccupiedPercent)
		assert.Equal(t, 10, p.Members.PermanentPercent)
		assert.Equal(t, []Bucket{{LengthFt: 30, WidthFt: 12, Weight: 1}}, p.Members.Buckets)
		assert.Equal(t, ComplexProfile().Slips, p.Slips)
	})

	t.Run("explicit name", func(t *testing.T) {
		path := filepath.Join(dir, "named.yml")
		require.NoError(t, os.WriteFile(path, []byte("name: harbor\n"), 0644))

		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "harbor", p.Name)
	})

	t.Run("invalid tables", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slips:\n  buckets: []\n"), 0644))

		_, err := LoadProfile(path)
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slips: [[["), 0644))

		_, err := LoadProfile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfile(filepath.Join(dir, "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestStatsPrint(t *testing.T) {
	s := Stats{
		Slips:       200,
		Members:     225,
		Permanent:   22,
		WithSlip:    168,
		WithoutSlip: 57,
		SlipSizes:   []SizeCount{{LengthFt: 18, WidthFt: 7, Count: 15}},
	}

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "Permanent members: 22\n")
	assert.Contains(t, out, "Members with current slips: 168\n")
	assert.Contains(t, out, "Members without slips: 57\n")
	assert.Contains(t, out, "Competition: 225 members for 200 slips\n")
	assert.Contains(t, out, "Expected unassigned: ~25\n")
	assert.Contains(t, out, "18' x  7': 15\n")
}
