package xl

import (
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Row is an ordered sequence of cells; a cell's column is its position.
type Row []Cell

// Sheet is an ordered sequence of rows; a row's number is its position + 1.
type Sheet struct {
	Data []Row
}

// AddRow appends a row built from cells and returns its 0-based index.
func (s *Sheet) AddRow(cells ...Cell) int {
	s.Data = append(s.Data, Row(cells))
	return len(s.Data) - 1
}

// AssembleRow renders row as a <row> element. idx is the 0-based position
// of the row in its sheet. Cells are formatted from a copy, so type
// corrections do not reach the caller's data.
func (e *Encoder) AssembleRow(row Row, idx int, reg *StyleRegistry) string {
	rowNumber := idx + 1

	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString(`<row r="`)
	b.WriteString(strconv.Itoa(rowNumber))
	b.WriteString(`">`)
	for col := range row {
		c := row[col]
		b.WriteString(e.FormatCell(&c, col, rowNumber, reg))
	}
	b.WriteString(`</row>`)
	return b.String()
}

// AssembleWorksheet renders the complete xl/worksheets/sheet1.xml part.
func (e *Encoder) AssembleWorksheet(sheet Sheet, reg *StyleRegistry) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	for i, row := range sheet.Data {
		b.WriteString(e.AssembleRow(row, i, reg))
	}
	return strings.Replace(worksheetXML, placeholder, b.String(), 1)
}
