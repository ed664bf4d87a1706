package marina

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// SlipColumns is the header row of a slips file
var SlipColumns = []string{
	"slip_id",
	"max_length_ft",
	"max_length_in",
	"max_width_ft",
	"max_width_in",
}

// MemberColumns is the header row of a members file
var MemberColumns = []string{
	"member_id",
	"boat_length_ft",
	"boat_length_in",
	"boat_width_ft",
	"boat_width_in",
	"current_slip",
	"is_permanent",
}

// ErrMissingColumn is returned by the readers when a header lacks a required column
var ErrMissingColumn = errors.New("missing column")

// WriteOptions controls how records are encoded
type WriteOptions struct {
	// CRLF terminates rows with \r\n, which is what the historical files use
	CRLF bool
}

func newWriter(w io.Writer, opts WriteOptions) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = opts.CRLF
	return cw
}

// WriteSlips writes the header and one row per slip
func WriteSlips(w io.Writer, slips []Slip, opts WriteOptions) error {
	cw := newWriter(w, opts)
	if err := cw.Write(SlipColumns); err != nil {
		return fmt.Errorf("failed to write slip header: %w", err)
	}

	for _, s := range slips {
		row := []string{
			s.ID,
			strconv.Itoa(s.Max.LengthFt),
			strconv.Itoa(s.Max.LengthIn),
			strconv.Itoa(s.Max.WidthFt),
			strconv.Itoa(s.Max.WidthIn),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write slip %s: %w", s.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMembers writes the header and one row per member
func WriteMembers(w io.Writer, members []Member, opts WriteOptions) error {
	cw := newWriter(w, opts)
	if err := cw.Write(MemberColumns); err != nil {
		return fmt.Errorf("failed to write member header: %w", err)
	}

	for _, m := range members {
		permanent := "0"
		if m.Permanent {
			permanent = "1"
		}
		row := []string{
			m.ID,
			strconv.Itoa(m.Boat.LengthFt),
			strconv.Itoa(m.Boat.LengthIn),
			strconv.Itoa(m.Boat.WidthFt),
			strconv.Itoa(m.Boat.WidthIn),
			m.CurrentSlip,
			permanent,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write member %s: %w", m.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadSlips parses a slips file. Columns are located by header name.
func ReadSlips(r io.Reader) ([]Slip, error) {
	rows, index, err := readTable(r, SlipColumns)
	if err != nil {
		return nil, err
	}

	slips := make([]Slip, 0, len(rows))
	for line, row := range rows {
		p := fieldParser{row: row, index: index, line: line + 2}
		s := Slip{
			ID: p.field("slip_id"),
			Max: Dimensions{
				LengthFt: p.atoi("max_length_ft"),
				LengthIn: p.atoi("max_length_in"),
				WidthFt:  p.atoi("max_width_ft"),
				WidthIn:  p.atoi("max_width_in"),
			},
		}
		if p.err != nil {
			return nil, p.err
		}
		slips = append(slips, s)
	}
	return slips, nil
}

// ReadMembers parses a members file. An empty current_slip means unassigned;
// is_permanent accepts 1, true and TRUE.
func ReadMembers(r io.Reader) ([]Member, error) {
	rows, index, err := readTable(r, MemberColumns)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(rows))
	for line, row := range rows {
		p := fieldParser{row: row, index: index, line: line + 2}
		m := Member{
			ID: p.field("member_id"),
			Boat: Dimensions{
				LengthFt: p.atoi("boat_length_ft"),
				LengthIn: p.atoi("boat_length_in"),
				WidthFt:  p.atoi("boat_width_ft"),
				WidthIn:  p.atoi("boat_width_in"),
			},
			CurrentSlip: p.field("current_slip"),
		}
		switch p.field("is_permanent") {
		case "1", "true", "TRUE":
			m.Permanent = true
		}
		if p.err != nil {
			return nil, p.err
		}
		members = append(members, m)
	}
	return members, nil
}

func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, index, nil
}

// fieldParser keeps the first conversion error so callers can check once per row
type fieldParser struct {
	row   []string
	index map[string]int
	line  int
	err   error
}

func (p *fieldParser) field(name string) string {
	return p.row[p.index[name]]
}

func (p *fieldParser) atoi(name string) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.field(name))
	if err != nil {
		p.err = fmt.Errorf("line %d: invalid %s: %w", p.line, name, err)
		return 0
	}
	return v
}
