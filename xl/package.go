package xl

import (
	"bytes"
	"log/slog"
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Encoder turns a Config into a Package. An Encoder holds no per-run
// state and may be shared; every Encode call allocates its own
// StyleRegistry.
type Encoder struct {
	log *slog.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLogger sets the logger that receives encoding diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode encodes cfg with a default Encoder.
func Encode(cfg *Config) (*Package, error) {
	return NewEncoder().Encode(cfg)
}

// Encode validates cfg and builds the complete package. On a configuration
// error no part is produced.
func (e *Encoder) Encode(cfg *Config) (*Package, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := NewStyleRegistry()
	worksheet := e.AssembleWorksheet(cfg.Sheet, reg)
	styles := reg.StyleSheet()

	e.log.Debug("encoded package",
		"filename", cfg.Filename,
		"rows", len(cfg.Sheet.Data),
		"styles", reg.Len(),
		"fills", len(reg.Fills()))

	return Compose(cfg.Filename, worksheet, styles), nil
}

// Package maps archive paths to the XML text of each part.
type Package struct {
	Filename string
	Parts    map[string]string
}

// Compose combines the computed worksheet and stylesheet with the static
// workbook parts.
func Compose(filename, worksheet, styles string) *Package {
	return &Package{
		Filename: filename,
		Parts: map[string]string{
			PathContentTypes: contentTypesXML,
			PathRootRels:     rootRelsXML,
			PathWorkbook:     workbookXML,
			PathWorkbookRels: workbookRelsXML,
			PathWorksheet:    worksheet,
			PathStyles:       styles,
		},
	}
}

// Name returns the file name of the delivered artifact.
func (p *Package) Name() string {
	return p.Filename + ".xlsx"
}

// Store writes every part to s, in path order.
func (p *Package) Store(s Storage) error {
	return enumerate(p.Parts, func(path, text string) error {
		return s.WriteBlob(path, []byte(text))
	})
}

// Bytes returns the zipped package. Equal packages produce equal bytes.
func (p *Package) Bytes() ([]byte, error) {
	bb := bytes.Buffer{}
	zs := NewZipStorage(&bb)
	if err := p.Store(zs); err != nil {
		zs.Close()
		return nil, err
	}
	if err := zs.Close(); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V) error) error {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		err := callback(k, m[k])
		if err != nil {
			return err
		}
	}
	return nil
}
