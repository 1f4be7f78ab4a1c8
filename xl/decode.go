package xl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeConfig reads a YAML (or JSON) input document:
//
//	filename: report
//	sheet:
//	  data:
//	    - [{value: Name, type: string, style: 'bgColor="FFFF00"'}, {value: 3, type: number}]
//
// The document shape is checked before any cell is decoded. A cell whose
// type is not recognized is logged and decoded as a string cell.
func (e *Encoder) DecodeConfig(r io.Reader) (*Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingFilename
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document is not a mapping", ErrMissingFilename)
	}

	fn := mappingValue(root, "filename")
	switch {
	case fn == nil || isNull(fn):
		return nil, ErrMissingFilename
	case fn.Kind != yaml.ScalarNode || fn.ShortTag() != "!!str":
		return nil, ErrFilenameType
	case fn.Value == "":
		return nil, ErrMissingFilename
	}

	var data *yaml.Node
	if sheet := mappingValue(root, "sheet"); sheet != nil && sheet.Kind == yaml.MappingNode {
		data = mappingValue(sheet, "data")
	}
	if data == nil || data.Kind != yaml.SequenceNode {
		return nil, ErrSheetNotSequence
	}
	for i, rn := range data.Content {
		if resolve(rn).Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: row %d", ErrRowNotSequence, i+1)
		}
	}

	cfg := &Config{Filename: fn.Value}
	cfg.Sheet.Data = make([]Row, 0, len(data.Content))
	for i, rn := range data.Content {
		cells := resolve(rn).Content
		row := make(Row, 0, len(cells))
		for j, cn := range cells {
			c, err := e.decodeCell(cn, CellReference(j, i+1))
			if err != nil {
				return nil, err
			}
			row = append(row, c)
		}
		cfg.Sheet.Data = append(cfg.Sheet.Data, row)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (e *Encoder) decodeCell(n *yaml.Node, ref string) (Cell, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return Cell{}, fmt.Errorf("%w: %s", ErrInvalidCell, ref)
	}

	var c Cell

	name := ""
	if tn := mappingValue(n, "type"); tn != nil && tn.Kind == yaml.ScalarNode {
		name = tn.Value
	}
	t, ok := ParseCellType(name)
	if !ok {
		e.log.Warn("invalid cell type, falling back to string", "cell", ref, "type", name)
	}
	c.Type = t

	if vn := mappingValue(n, "value"); vn != nil && !isNull(vn) {
		if vn.Kind != yaml.ScalarNode {
			return Cell{}, fmt.Errorf("%w: %s value is not a scalar", ErrInvalidCell, ref)
		}
		c.Value = vn.Value
	}

	if sn := mappingValue(n, "style"); sn != nil && !isNull(sn) {
		switch sn.Kind {
		case yaml.ScalarNode:
			c.Style = Style(sn.Value)
		case yaml.MappingNode:
			c.Style = styleFromMapping(sn)
		default:
			return Cell{}, fmt.Errorf("%w: %s style is neither text nor a mapping", ErrInvalidCell, ref)
		}
	}
	return c, nil
}

// styleFromMapping renders {bgColor: FF0000} as bgColor="FF0000", keeping
// the document order of keys.
func styleFromMapping(n *yaml.Node) Style {
	parts := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), resolve(n.Content[i+1])
		parts = append(parts, k.Value+`="`+v.Value+`"`)
	}
	return Style(strings.Join(parts, " "))
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
