package model

import (
	"math"
	"strconv"
	"strings"
)

// CellKind is the discriminator of Cell
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// String returns the string representation
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a spreadsheet cell value. It is one of Empty, Text or Number.
// Number cells keep the source text so Text never reformats what the sheet holds.
type Cell struct {
	kind   CellKind
	text   string
	number float64
}

// EmptyCell returns the empty cell
func EmptyCell() Cell {
	return Cell{kind: CellEmpty}
}

// TextCell creates a text cell
func TextCell(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// NumberCell creates a number cell
func NumberCell(v float64) Cell {
	return Cell{kind: CellNumber, text: strconv.FormatFloat(v, 'f', -1, 64), number: v}
}

// ParseCell classifies a raw cell string whose sheet type is numeric or
// unknown. Blank strings are Empty, strings holding a finite number are
// Number, anything else is Text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return Cell{kind: CellNumber, text: trimmed, number: v}
	}
	return TextCell(raw)
}

// ParseTextCell builds a cell the sheet stores as a string. Digits stay
// text, so "007" is never read as 7.
func ParseTextCell(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return EmptyCell()
	}
	return TextCell(raw)
}

// ParseRow converts a row of raw cell strings
func ParseRow(raw []string) []Cell {
	cells := make([]Cell, len(raw))
	for i, s := range raw {
		cells[i] = ParseCell(s)
	}
	return cells
}

// Kind returns the cell kind
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell holds no value
func (c Cell) IsEmpty() bool {
	return c.kind == CellEmpty
}

// Text returns the trimmed textual form of the cell as stored in the sheet
func (c Cell) Text() string {
	if c.kind == CellEmpty {
		return ""
	}
	return strings.TrimSpace(c.text)
}

// Float coerces the cell to a non-negative float. Unparseable text and empty
// cells become 0.
func (c Cell) Float() float64 {
	var v float64
	switch c.kind {
	case CellNumber:
		v = c.number
	case CellText:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(c.text), 64)
		if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
			return 0
		}
		v = parsed
	}
	if v < 0 {
		return 0
	}
	return v
}

// Int coerces the cell to a non-negative integer. Numbers are truncated toward
// zero and capped at math.MaxInt; text must be an integer literal. Anything
// else becomes 0.
func (c Cell) Int() int {
	var v int
	switch c.kind {
	case CellNumber:
		if c.number >= float64(math.MaxInt) {
			return math.MaxInt
		}
		v = int(c.number)
	case CellText:
		parsed, err := strconv.Atoi(strings.TrimSpace(c.text))
		if err != nil {
			return 0
		}
		v = parsed
	}
	if v < 0 {
		return 0
	}
	return v
}

// CellAt returns the cell at the 0-based column index, or Empty when the row
// is shorter than that.
func CellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return EmptyCell()
	}
	return row[idx]
}
