package cloudwatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DimensionsNone is rendered when the alarm metric has no dimensions.
const DimensionsNone = "none"

// UnmarshalJSON keeps every key of an object entry in document order.
// Entries which are not objects are kept as text.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		text, err := valueText(data)
		if err != nil {
			return err
		}

		*d = Dimension{Text: text}

		return nil
	}

	dimension := Dimension{
		Pairs: []Pair{},
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected dimension key %v", tok)
		}

		var raw json.RawMessage

		if err := dec.Decode(&raw); err != nil {
			return err
		}

		value, err := valueText(raw)
		if err != nil {
			return err
		}

		dimension.Pairs = append(dimension.Pairs, Pair{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = dimension

	return nil
}

// String renders the standard shape as "Name: Value", with any other keys in brackets.
// Other objects render every pair.
func (d Dimension) String() string {
	if d.Pairs == nil {
		return d.Text
	}

	if len(d.Pairs) == 0 {
		return "{}"
	}

	name, value := -1, -1

	for i, pair := range d.Pairs {
		switch {
		case name < 0 && strings.EqualFold(pair.Key, "name"):
			name = i
		case value < 0 && strings.EqualFold(pair.Key, "value"):
			value = i
		}
	}

	if name < 0 || value < 0 {
		return joinPairs(d.Pairs)
	}

	line := d.Pairs[name].Value + ": " + d.Pairs[value].Value

	var rest []Pair

	for i, pair := range d.Pairs {
		if i != name && i != value {
			rest = append(rest, pair)
		}
	}

	if len(rest) > 0 {
		line += " (" + joinPairs(rest) + ")"
	}

	return line
}

// RenderDimensions returns one line per dimension, in the order received.
func RenderDimensions(dimensions []Dimension) string {
	if len(dimensions) == 0 {
		return DimensionsNone
	}

	lines := make([]string, 0, len(dimensions))

	for _, dimension := range dimensions {
		lines = append(lines, dimension.String())
	}

	return strings.Join(lines, "\n")
}

func joinPairs(pairs []Pair) string {
	parts := make([]string, 0, len(pairs))

	for _, pair := range pairs {
		parts = append(parts, pair.Key+": "+pair.Value)
	}

	return strings.Join(parts, ", ")
}

// valueText unquotes strings and compacts everything else.
func valueText(raw []byte) (string, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}

		return s, nil
	}

	var buf bytes.Buffer

	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}

	return buf.String(), nil
}
