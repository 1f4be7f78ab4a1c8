package xl

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleConfig() *Config {
	cfg := &Config{Filename: "sample"}
	cfg.Sheet.AddRow(Str("Name").WithStyle(BgColor("FFFF00")), Str("Score"))
	cfg.Sheet.AddRow(Str("Ann & Bob"), Int(42))
	cfg.Sheet.AddRow(Str(`<tag>`), Num(3.25).WithStyle(BgColor("00FF00")))
	return cfg
}

func TestEncodeParts(t *testing.T) {
	e, _ := newTestEncoder()

	p, err := e.Encode(sampleConfig())
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "sample.xlsx" {
		t.Errorf("Name() = %q", p.Name())
	}

	paths := []string{PathContentTypes, PathRootRels, PathWorkbook, PathWorkbookRels, PathWorksheet, PathStyles}
	if len(p.Parts) != len(paths) {
		t.Errorf("got %d parts, want %d", len(p.Parts), len(paths))
	}
	for _, path := range paths {
		if _, ok := p.Parts[path]; !ok {
			t.Errorf("missing part %s", path)
		}
	}

	static := map[string]string{
		PathContentTypes: contentTypesXML,
		PathRootRels:     rootRelsXML,
		PathWorkbook:     workbookXML,
		PathWorkbookRels: workbookRelsXML,
	}
	for path, want := range static {
		if p.Parts[path] != want {
			t.Errorf("%s differs from its template", path)
		}
	}

	ws := p.Parts[PathWorksheet]
	for _, frag := range []string{
		`<row r="1"><c r="A1" s="2" t="inlineStr"><is><t>Name</t></is></c>`,
		`<c r="A2" t="inlineStr"><is><t>Ann &amp; Bob</t></is></c><c r="B2"><v>42</v></c>`,
		`<c r="B3" s="3"><v>3.25</v></c>`,
	} {
		if !strings.Contains(ws, frag) {
			t.Errorf("worksheet lacks %s", frag)
		}
	}

	doc := parseStyleSheet(t, p.Parts[PathStyles])
	if doc.Fills.Count != 4 || doc.CellXfs.Count != 4 {
		t.Errorf("fills = %d, cellXfs = %d, want 4 and 4", doc.Fills.Count, doc.CellXfs.Count)
	}
}

func TestEncodeRejectsConfigErrors(t *testing.T) {
	for _, cfg := range []*Config{nil, {}, {Filename: ""}} {
		p, err := Encode(cfg)
		if !errors.Is(err, ErrMissingFilename) {
			t.Errorf("Encode(%+v) error = %v", cfg, err)
		}
		if p != nil {
			t.Errorf("Encode(%+v) produced a package", cfg)
		}
	}
}

func TestEncodeRejectsUnencodableText(t *testing.T) {
	for _, v := range []string{"bell\x07", "bad\xffutf8", "nul\x00"} {
		cfg := &Config{Filename: "r"}
		cfg.Sheet.AddRow(Str("ok"), Str(v))
		p, err := Encode(cfg)
		if !errors.Is(err, ErrInvalidText) {
			t.Errorf("Encode(%q) error = %v", v, err)
		}
		if err != nil && !strings.Contains(err.Error(), "B1") {
			t.Errorf("error %q does not name the cell", err)
		}
		if p != nil {
			t.Errorf("Encode(%q) produced a package", v)
		}
	}
}

func TestWorksheetIsWellFormed(t *testing.T) {
	cfg := &Config{Filename: "r"}
	cfg.Sheet.AddRow(Str("tab\there"), Str("line\nbreak\r"), Str("naïve 😀 <&>"))
	p, err := Encode(cfg)
	if err != nil {
		t.Fatal(err)
	}
	d := xml.NewDecoder(strings.NewReader(p.Parts[PathWorksheet]))
	for {
		_, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("sheet1.xml is not well-formed: %v", err)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	e, _ := newTestEncoder()

	p1, err := e.Encode(sampleConfig())
	if err != nil {
		t.Fatal(err)
	}
	p2, err := e.Encode(sampleConfig())
	if err != nil {
		t.Fatal(err)
	}
	if p1.Digest() != p2.Digest() {
		t.Errorf("digests differ: %s %s", p1.Digest(), p2.Digest())
	}

	b1, err := p1.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	b2, err := p2.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("archives differ")
	}

	other := sampleConfig()
	other.Sheet.AddRow(Str("extra"))
	p3, err := e.Encode(other)
	if err != nil {
		t.Fatal(err)
	}
	if p3.Digest() == p1.Digest() {
		t.Error("different content yields the same digest")
	}
}

func TestPackageOpensInExcelize(t *testing.T) {
	p, err := Encode(sampleConfig())
	if err != nil {
		t.Fatal(err)
	}
	blob, err := p.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("excelize cannot open package: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Sheet1" {
		t.Fatalf("sheets = %q", sheets)
	}

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Name", "Score"},
		{"Ann & Bob", "42"},
		{"<tag>", "3.25"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows: %q", len(rows), rows)
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %q, want %q", i+1, rows[i], want[i])
		}
	}

	style, err := f.GetCellStyle("Sheet1", "B3")
	if err != nil {
		t.Fatal(err)
	}
	if style != 3 {
		t.Errorf("B3 style = %d, want 3", style)
	}
}

func TestPackageStoreDir(t *testing.T) {
	p, err := Encode(sampleConfig())
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := p.Store(NewDirStorage(dir)); err != nil {
		t.Fatal(err)
	}
	for path, text := range p.Parts {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(path, "/"))))
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if string(got) != text {
			t.Errorf("%s content differs", path)
		}
	}
}

type failingStorage struct{ after int }

func (fs *failingStorage) WriteBlob(path string, blob []byte) error {
	if fs.after == 0 {
		return errors.New("disk full")
	}
	fs.after--
	return nil
}

func TestPackageStoreStopsOnError(t *testing.T) {
	p := Compose("x", "ws", "st")
	if err := p.Store(&failingStorage{after: 2}); err == nil || err.Error() != "disk full" {
		t.Errorf("got %v", err)
	}
}
