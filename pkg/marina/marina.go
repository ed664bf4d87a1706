// Package marina defines the slip and member records shared by the fixture
// generator and the CSV codec.
package marina

import "fmt"

const inchesPerFoot = 12

// Dimensions is a length and width, each kept as whole feet plus an inch
// remainder the way the CSV files carry them.
type Dimensions struct {
	LengthFt int
	LengthIn int
	WidthFt  int
	WidthIn  int
}

// LengthInches returns the total length in inches
func (d Dimensions) LengthInches() int {
	return d.LengthFt*inchesPerFoot + d.LengthIn
}

// WidthInches returns the total width in inches
func (d Dimensions) WidthInches() int {
	return d.WidthFt*inchesPerFoot + d.WidthIn
}

// FitsIn reports whether d fits inside container on both axes
func (d Dimensions) FitsIn(container Dimensions) bool {
	return d.LengthInches() <= container.LengthInches() &&
		d.WidthInches() <= container.WidthInches()
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%d'%d\" x %d'%d\"", d.LengthFt, d.LengthIn, d.WidthFt, d.WidthIn)
}

// Slip is a berth with a maximum boat size
type Slip struct {
	ID  string
	Max Dimensions
}

// Member owns one boat and may already hold a slip
type Member struct {
	ID          string
	Boat        Dimensions
	CurrentSlip string // empty when unassigned
	Permanent   bool
}

// HasSlip reports whether the member currently holds a slip
func (m Member) HasSlip() bool {
	return m.CurrentSlip != ""
}

const (
	slipPrefix   = "S"
	memberPrefix = "M"
)

// SlipID formats the 1-based slip counter n as S001, S002, ...
func SlipID(n int) string {
	return fmt.Sprintf("%s%03d", slipPrefix, n)
}

// MemberID formats the 1-based member counter n as M001, M002, ...
func MemberID(n int) string {
	return fmt.Sprintf("%s%03d", memberPrefix, n)
}

// SlipIDs returns the identifiers of slips in slice order
func SlipIDs(slips []Slip) []string {
	ids := make([]string, len(slips))
	for i, s := range slips {
		ids[i] = s.ID
	}
	return ids
}
