package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Number is the set of Go numeric types a [Cell] can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Cell is a single table value, either text or a number. The zero Cell is
// the empty string.
//
// Numbers keep their textual form from construction so integers never lose
// precision through a float conversion.
type Cell struct {
	text string
	num  bool
	// nonFinite marks NaN and infinities, which have no JSON representation.
	nonFinite bool
}

// Str returns a text cell.
func Str(s string) Cell { return Cell{text: s} }

// Num returns a numeric cell.
func Num[N Number](n N) Cell {
	switch reflect.ValueOf(n).Kind() {
	case reflect.Float32:
		return floatCell(float64(n), 32)
	case reflect.Float64:
		return floatCell(float64(n), 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Cell{text: strconv.FormatUint(uint64(n), 10), num: true}
	default:
		return Cell{text: strconv.FormatInt(int64(n), 10), num: true}
	}
}

func floatCell(f float64, bits int) Cell {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Cell{text: strconv.FormatFloat(f, 'f', -1, bits), num: true, nonFinite: true}
	}
	return Cell{text: strconv.FormatFloat(f, 'f', -1, bits), num: true}
}

// Value converts a dynamic value into a Cell. It accepts strings, every Go
// integer and float type, [json.Number] and Cell itself.
func Value(v any) (Cell, error) {
	switch x := v.(type) {
	case Cell:
		return x, nil
	case string:
		return Str(x), nil
	case json.Number:
		return numberCell(string(x))
	case int:
		return Num(x), nil
	case int8:
		return Num(x), nil
	case int16:
		return Num(x), nil
	case int32:
		return Num(x), nil
	case int64:
		return Num(x), nil
	case uint:
		return Num(x), nil
	case uint8:
		return Num(x), nil
	case uint16:
		return Num(x), nil
	case uint32:
		return Num(x), nil
	case uint64:
		return Num(x), nil
	case uintptr:
		return Num(x), nil
	case float32:
		return Num(x), nil
	case float64:
		return Num(x), nil
	default:
		return Cell{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// numberCell parses a decimal literal as found in JSON or YAML input.
func numberCell(s string) (Cell, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Num(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Num(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: number %q: %s", ErrUnsupportedValue, s, err)
	}
	return Num(f), nil
}

// String returns the textual representation used by every text renderer.
func (c Cell) String() string { return c.text }

// IsNumber reports whether c holds a number.
func (c Cell) IsNumber() bool { return c.num }

// MarshalJSON encodes text as a JSON string and numbers bare. NaN and
// infinities encode as null. U+2028 and U+2029 are always written as \u
// escapes, and invalid UTF-8 is replaced with U+FFFD, so such text does not
// survive a round trip byte for byte.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.num {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(c.text); err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	}
	if c.nonFinite {
		return []byte("null"), nil
	}
	return []byte(c.text), nil
}

// UnmarshalJSON accepts a JSON string or number.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Str(s)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, ok := v.(json.Number)
	if !ok {
		return fmt.Errorf("%w: JSON %s", ErrUnsupportedValue, data)
	}
	cell, err := numberCell(n.String())
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// MarshalYAML encodes text as a string scalar and numbers as int or float
// scalars.
func (c Cell) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: c.text, Tag: "!!str"}
	if c.num {
		node.Tag = "!!float"
		if _, err := strconv.ParseInt(c.text, 10, 64); err == nil {
			node.Tag = "!!int"
		} else if _, err := strconv.ParseUint(c.text, 10, 64); err == nil {
			node.Tag = "!!int"
		}
		switch c.text {
		case "NaN":
			node.Value = ".nan"
		case "+Inf":
			node.Value = ".inf"
		case "-Inf":
			node.Value = "-.inf"
		}
	}
	return node, nil
}

// UnmarshalYAML accepts string, int and float scalars.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: YAML node at line %d is not a scalar", ErrUnsupportedValue, node.Line)
	}
	switch node.ShortTag() {
	case "!!str":
		*c = Str(node.Value)
		return nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			*c = Num(i)
			return nil
		}
		var u uint64
		if err := node.Decode(&u); err != nil {
			return err
		}
		*c = Num(u)
		return nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*c = Num(f)
		return nil
	default:
		return fmt.Errorf("%w: YAML %s %q at line %d", ErrUnsupportedValue, node.ShortTag(), node.Value, node.Line)
	}
}
