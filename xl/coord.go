package xl

import "strconv"

// ColumnLetters converts a 0-based column index into spreadsheet column
// notation: 0 is "A", 25 is "Z", 26 is "AA", 702 is "AAA".
//
// Negative indices produce an empty string.
func ColumnLetters(col int) string {
	if col < 0 {
		return ""
	}
	letter := string(rune('A' + col%26))
	if col < 26 {
		return letter
	}
	return ColumnLetters(col/26-1) + letter
}

// CellReference combines a 0-based column index and a 1-based row number
// into an A1-style reference.
func CellReference(col, row int) string {
	letters := ColumnLetters(col)
	if letters == "" {
		return ""
	}
	return letters + strconv.Itoa(row)
}
