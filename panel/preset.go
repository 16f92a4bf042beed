package panel

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes numbers, bools and options as scalars and colors as
// an r/g/b mapping.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case KindNumber:
		return v.Number, nil
	case KindBool:
		return v.Bool, nil
	case KindColor:
		return v.Color, nil
	case KindOption:
		return v.Option, nil
	}
	return nil, fmt.Errorf("panel: cannot marshal kind %v", v.Kind)
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var c RGB
		if err := node.Decode(&c); err != nil {
			return err
		}
		*v = Value{Kind: KindColor, Color: c}
		return nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = Bool(b)
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}
			*v = Number(f)
		default:
			*v = Choice(node.Value)
		}
		return nil
	}
	return fmt.Errorf("panel: line %d: unsupported preset value", node.Line)
}

// EncodePreset writes s as YAML.
func EncodePreset(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]Value(s)); err != nil {
		return err
	}
	return enc.Close()
}

// DecodePreset reads a snapshot written by EncodePreset.
func DecodePreset(r io.Reader) (Snapshot, error) {
	s := Snapshot{}
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	return s, nil
}

// SavePreset writes s to path.
func SavePreset(path string, s Snapshot) error {
	var buf bytes.Buffer
	if err := EncodePreset(&buf, s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadPreset reads a snapshot from path.
func LoadPreset(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePreset(f)
}
