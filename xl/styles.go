package xl

import (
	"bytes"

	"github.com/adnsv/srw/xml"
)

// StyleSheet renders xl/styles.xml for the registered styles.
//
// The fills element always starts with the none and gray125 fills, followed
// by one solid fill per background color. cellXfs holds the two built-in
// formats and then one format per registered style, so each index returned
// by Register resolves.
func (r *StyleRegistry) StyleSheet() string {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("styleSheet")
	x.Attr("xmlns", nsSpreadsheetML)
	x.Attr("xmlns:x14ac", nsX14ac)

	x.OTag("+fonts").Attr("count", 1).Attr("x14ac:knownFonts", 1)
	DefaultFont.write(x)
	x.CTag()

	r.writeFills(x)

	x.OTag("+borders").Attr("count", 1)
	x.OTag("+border")
	x.OTag("+left").CTag()
	x.OTag("+right").CTag()
	x.OTag("+top").CTag()
	x.OTag("+bottom").CTag()
	x.OTag("+diagonal").CTag()
	x.CTag() // border
	x.CTag() // borders

	x.OTag("+cellStyleXfs").Attr("count", 1)
	writeXf(x, 0, false)
	x.CTag()

	r.writeCellXfs(x)

	x.OTag("+cellStyles").Attr("count", 1)
	x.OTag("+cellStyle").Attr("name", "Normal").Attr("xfId", 0).Attr("builtinId", 0).CTag()
	x.CTag()

	x.OTag("+dxfs").Attr("count", 0).CTag()

	x.OTag("+tableStyles").Attr("count", 0)
	x.Attr("defaultTableStyle", "TableStyleMedium2")
	x.Attr("defaultPivotStyle", "PivotStyleLight16")
	x.CTag()

	x.OTag("+extLst")
	x.OTag("+ext").Attr("uri", "{EB79DEF2-80B8-43e5-95BD-54CBDDF9020C}")
	x.Attr("xmlns:x14", "http://schemas.microsoft.com/office/spreadsheetml/2009/9/main")
	x.OTag("+x14:slicerStyles").Attr("defaultSlicerStyle", "SlicerStyleLight1").CTag()
	x.CTag()
	x.OTag("+ext").Attr("uri", "{9260A510-F301-46a8-8635-F512D64BE5F5}")
	x.Attr("xmlns:x15", "http://schemas.microsoft.com/office/spreadsheetml/2010/11/main")
	x.OTag("+x15:timelineStyles").Attr("defaultTimelineStyle", "TimeSlicerStyleLight1").CTag()
	x.CTag()
	x.CTag() // extLst

	x.CTag() // styleSheet

	return bb.String()
}

func (r *StyleRegistry) writeFills(x *xml.Writer) {
	fills := r.Fills()

	x.OTag("+fills").Attr("count", builtinFillCount+len(fills))
	for _, pattern := range []string{"none", "gray125"} {
		x.OTag("+fill")
		x.OTag("patternFill").Attr("patternType", pattern).CTag()
		x.CTag()
	}
	for _, f := range fills {
		x.OTag("+fill")
		x.OTag("patternFill").Attr("patternType", "solid")
		x.OTag("fgColor").Attr("rgb", f.Color).CTag()
		x.OTag("bgColor").Attr("indexed", 64).CTag()
		x.CTag() // patternFill
		x.CTag() // fill
	}
	x.CTag()
}

func (r *StyleRegistry) writeCellXfs(x *xml.Writer) {
	x.OTag("+cellXfs").Attr("count", builtinStyleCount+r.Len())

	writeXf(x, 0, true)

	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).Attr("xfId", 0)
	x.Attr("applyAlignment", 1)
	x.OTag("alignment").Attr("wrapText", 1).CTag()
	x.CTag()

	for _, fillID := range r.fillIDs() {
		writeXf(x, fillID, true)
	}
	x.CTag()
}

func writeXf(x *xml.Writer, fillID int, withParent bool) {
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", fillID).Attr("borderId", 0)
	if withParent {
		x.Attr("xfId", 0)
	}
	if fillID >= builtinFillCount {
		x.Attr("applyFill", 1)
	}
	x.CTag()
}
