package xl

import (
	"html"
	"math"
	"strconv"
	"strings"
)

// Cell is a single typed value of a sheet row.
//
// Value holds the textual form of the value. For number cells it must be a
// plain decimal number; use SetInt/SetFloat (or Int/Num) to fill it.
type Cell struct {
	Type  CellType
	Value string
	Style Style
}

// CellType is the type of cell value type.
type CellType int

// Cell value types enumeration.
const (
	CellTypeString CellType = iota
	CellTypeNumber
)

var cellTypeNames = [...]string{
	CellTypeString: "string",
	CellTypeNumber: "number",
}

func (t CellType) valid() bool {
	return t == CellTypeString || t == CellTypeNumber
}

func (t CellType) String() string {
	if !t.valid() {
		return "CellType(" + strconv.Itoa(int(t)) + ")"
	}
	return cellTypeNames[t]
}

// ParseCellType maps the textual type names used by input documents onto
// CellType. The second result is false for unrecognized names.
func ParseCellType(s string) (CellType, bool) {
	for i, n := range cellTypeNames {
		if n == s {
			return CellType(i), true
		}
	}
	return CellTypeString, false
}

// Str returns a string cell.
func Str(v string) Cell {
	c := Cell{}
	c.SetStr(v)
	return c
}

// Int returns a number cell holding an integer.
func Int(v int64) Cell {
	c := Cell{}
	c.SetInt(v)
	return c
}

// Num returns a number cell.
func Num(v float64) Cell {
	c := Cell{}
	c.SetFloat(v)
	return c
}

func (c *Cell) SetStr(v string) {
	c.Type = CellTypeString
	c.Value = v
}

func (c *Cell) SetInt(v int64) {
	c.Type = CellTypeNumber
	c.Value = strconv.FormatInt(v, 10)
}

// SetFloat stores the shortest decimal form of v. Exponent notation is used
// for magnitudes outside [1e-6, 1e21).
func (c *Cell) SetFloat(v float64) {
	c.Type = CellTypeNumber
	c.Value = formatNumber(v)
}

// WithStyle returns a copy of the cell carrying style s.
func (c Cell) WithStyle(s Style) Cell {
	c.Style = s
	return c
}

func formatNumber(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(v, 'E', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCell renders c as a <c> element located at (col, row), where col is
// 0-based and row is 1-based. A declared style is registered with reg and
// referenced through the s attribute.
//
// A cell with an unrecognized type is logged, corrected to CellTypeString in
// place, and rendered as a string.
func (e *Encoder) FormatCell(c *Cell, col, row int, reg *StyleRegistry) string {
	ref := CellReference(col, row)
	if !c.Type.valid() {
		e.log.Warn("invalid cell type, falling back to string",
			"cell", ref, "type", int(c.Type))
		c.Type = CellTypeString
	}

	var b strings.Builder
	b.WriteString(`<c r="`)
	b.WriteString(ref)
	b.WriteByte('"')
	if c.Style != "" && reg != nil {
		b.WriteString(` s="`)
		b.WriteString(strconv.Itoa(reg.Register(c.Style)))
		b.WriteByte('"')
	}

	switch c.Type {
	case CellTypeString:
		b.WriteString(` t="inlineStr"><is><t>`)
		b.WriteString(html.EscapeString(c.Value))
		b.WriteString(`</t></is></c>`)
	case CellTypeNumber:
		b.WriteString(`><v>`)
		b.WriteString(c.Value)
		b.WriteString(`</v></c>`)
	}
	return b.String()
}
