package panel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a panel input.
type Kind int

const (
	KindNumber Kind = iota
	KindBool
	KindColor
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindOption:
		return "option"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RGB is a color triple. In a snapshot the channels are in 0-255 editor
// space; handlers bound with UnitChannel receive them in 0-1.
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Value is one parameter value.
type Value struct {
	Kind   Kind
	Number float64
	Bool   bool
	Color  RGB
	Option string
}

func Number(v float64) Value { return Value{Kind: KindNumber, Number: v} }
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func Choice(s string) Value { return Value{Kind: KindOption, Option: s} }

func Color(r, g, b float64) Value {
	return Value{Kind: KindColor, Color: RGB{R: r, G: g, B: b}}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindColor:
		return fmt.Sprintf("%g,%g,%g", v.Color.R, v.Color.G, v.Color.B)
	case KindOption:
		return v.Option
	}
	return "?"
}

// As reinterprets a scalar as kind by parsing its text form, so a preset
// option written as 1 or true still reads as an option. Values that cannot
// be reinterpreted are returned unchanged.
func (v Value) As(kind Kind) Value {
	if v.Kind == kind || v.Kind == KindColor || kind == KindColor {
		return v
	}
	out, err := ParseValue(kind, v.String())
	if err != nil {
		return v
	}
	return out
}

// ParseValue reads text typed by a user as a value of the given kind.
// Colors are written "r,g,b" in 0-255 or "#rrggbb".
func ParseValue(kind Kind, text string) (Value, error) {
	text = strings.TrimSpace(text)
	switch kind {
	case KindNumber:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse number %q: %w", text, err)
		}
		return Number(f), nil
	case KindBool:
		switch strings.ToLower(text) {
		case "on", "yes":
			return Bool(true), nil
		case "off", "no":
			return Bool(false), nil
		}
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("parse bool %q: %w", text, err)
		}
		return Bool(b), nil
	case KindColor:
		return parseColor(text)
	case KindOption:
		if text == "" {
			return Value{}, errors.New("empty option")
		}
		return Choice(text), nil
	}
	return Value{}, fmt.Errorf("unknown kind %v", kind)
}

func parseColor(text string) (Value, error) {
	if strings.HasPrefix(text, "#") {
		hex, err := strconv.ParseUint(strings.TrimPrefix(text, "#"), 16, 32)
		if err != nil || len(text) != 7 {
			return Value{}, fmt.Errorf("parse color %q: want #rrggbb", text)
		}
		return Color(float64(hex>>16&0xff), float64(hex>>8&0xff), float64(hex&0xff)), nil
	}
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("parse color %q: want r,g,b", text)
	}
	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse color %q: %w", text, err)
		}
		c[i] = f
	}
	return Color(c[0], c[1], c[2]), nil
}
