package xl

import "github.com/adnsv/srw/xml"

// Font describes the workbook font written into styles.xml.
// These properties correspond to the OpenXML font element as defined in ECMA-376.
type Font struct {
	Name       string  // Typeface name
	Size       float64 // Font size in points
	Family     int     // Font family class (2 = swiss)
	Scheme     string  // Theme font scheme ("minor", "major" or empty)
	ThemeColor int     // Theme color index
}

// DefaultFont is the single font every generated workbook declares.
var DefaultFont = Font{
	Name:       "Calibri",
	Size:       11,
	Family:     2,
	Scheme:     "minor",
	ThemeColor: 1,
}

func (f *Font) write(x *xml.Writer) {
	x.OTag("+font")
	x.OTag("+sz").Attr("val", f.Size).CTag()
	x.OTag("+color").Attr("theme", f.ThemeColor).CTag()
	x.OTag("+name").Attr("val", f.Name).CTag()
	if f.Family != 0 {
		x.OTag("+family").Attr("val", f.Family).CTag()
	}
	if f.Scheme != "" {
		x.OTag("+scheme").Attr("val", f.Scheme).CTag()
	}
	x.CTag()
}
