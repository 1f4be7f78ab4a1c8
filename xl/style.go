package xl

import "strings"

// Style is an opaque cell style descriptor. Only a bgColor="<hex>" token in
// its text is interpreted; two styles are the same style iff their text is
// equal.
type Style string

// BgColor returns a style that fills the cell background with the given
// RGB or ARGB hex color.
func BgColor(hex string) Style {
	return Style(`bgColor="` + hex + `"`)
}

const bgColorMarker = "bgColor="

// builtinStyleCount is the number of cellXfs entries that precede the
// registered styles: 0 is the unstyled cell, 1 the reserved default.
const builtinStyleCount = 2

// builtinFillCount counts the none and gray125 fills the schema requires.
const builtinFillCount = 2

// StyleRegistry collects the distinct styles met during one encoding run and
// hands out their style indices.
type StyleRegistry struct {
	styles []Style
	index  map[Style]int // position in styles
}

func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		index: map[Style]int{},
	}
}

// Register returns the style index of s, appending it on first use.
// Indices start at 2 and grow with each distinct style.
func (r *StyleRegistry) Register(s Style) int {
	if i, ok := r.index[s]; ok {
		return i + builtinStyleCount
	}
	i := len(r.styles)
	r.styles = append(r.styles, s)
	r.index[s] = i
	return i + builtinStyleCount
}

// Len returns the number of registered styles.
func (r *StyleRegistry) Len() int {
	return len(r.styles)
}

// Styles returns the registered styles in registration order.
func (r *StyleRegistry) Styles() []Style {
	return append([]Style(nil), r.styles...)
}

// Fill is a solid background fill. Color is ARGB hex.
type Fill struct {
	Color string
}

// Fills returns one fill per registered style carrying a background color,
// in registration order.
func (r *StyleRegistry) Fills() []Fill {
	var fills []Fill
	for _, s := range r.styles {
		if c, ok := s.bgColor(); ok {
			fills = append(fills, Fill{Color: c})
		}
	}
	return fills
}

// fillIDs maps each registered style to its fillId in styles.xml; styles
// without a background map to 0.
func (r *StyleRegistry) fillIDs() []int {
	ids := make([]int, len(r.styles))
	n := 0
	for i, s := range r.styles {
		if _, ok := s.bgColor(); ok {
			ids[i] = builtinFillCount + n
			n++
		}
	}
	return ids
}

// bgColor extracts the value between the first quote pair following the
// bgColor= marker, normalized to upper-case ARGB. Only 6 (RGB) or 8 (ARGB)
// hex digits are recognized.
func (s Style) bgColor() (string, bool) {
	str := string(s)
	m := strings.Index(str, bgColorMarker)
	if m < 0 {
		return "", false
	}
	rest := str[m+len(bgColorMarker):]
	open := strings.IndexByte(rest, '"')
	if open < 0 {
		return "", false
	}
	rest = rest[open+1:]
	end := strings.IndexByte(rest, '"')
	if end <= 0 {
		return "", false
	}
	c := strings.ToUpper(strings.TrimPrefix(rest[:end], "#"))
	if (len(c) != 6 && len(c) != 8) || strings.Trim(c, "0123456789ABCDEF") != "" {
		return "", false
	}
	if len(c) == 6 {
		c = "FF" + c
	}
	return c, true
}
