package frac64

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// record is the structured form of a fraction, shared by the JSON and YAML
// encodings. Pointers tell a missing field apart from a zero.
type record struct {
	Numerator   *int64 `json:"numerator" yaml:"numerator"`
	Denominator *int64 `json:"denominator" yaml:"denominator"`
}

// fraction validates r like Try and returns the fraction it holds, fields
// unchanged.
func (r record) fraction() (N, error) {
	if r.Numerator == nil {
		return N{}, errors.Wrap(ErrDecoding, "missing numerator")
	}
	if r.Denominator == nil {
		return N{}, errors.Wrap(ErrDecoding, "missing denominator")
	}
	return Try(*r.Numerator, *r.Denominator)
}

func recordOf(x N) record {
	m, n := x.Num(), x.Den()
	return record{Numerator: &m, Denominator: &n}
}

// MarshalJSON implements [json.Marshaler]. The result is an object with the
// fields "numerator" and "denominator", neither reduced nor normalized.
func (x N) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordOf(x))
}

// UnmarshalJSON implements [json.Unmarshaler] with DefaultDigits of
// precision. See DecodeJSON. As is conventional, null leaves x unchanged.
func (x *N) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	z, err := DecodeJSON(data, DefaultDigits)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// DecodeJSON decodes a fraction from JSON. The following forms are accepted:
//
//   - {"numerator": 3, "denominator": 4}: both fields are required and kept
//     as they are. An illegal numerator or denominator is reported as
//     ErrIllegalNumerator or ErrIllegalDenominator.
//   - 3: integer literals are converted exactly.
//   - 0.75: other number literals are converted by TryFromDecimal with the
//     given number of digits.
//   - "3/4" or "0.75": strings are parsed by Parse. A string Parse rejects
//     is reported as ErrDecoding, unless it names an illegal numerator or
//     denominator.
//
// Any other input is reported as ErrDecoding.
func DecodeJSON(data []byte, digits int) (N, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return N{}, errors.Wrap(ErrDecoding, "empty input")
	}
	switch data[0] {
	case '{':
		var r record
		if err := json.Unmarshal(data, &r); err != nil {
			return N{}, errors.Wrapf(ErrDecoding, "object: %v", err)
		}
		return r.fraction()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return N{}, errors.Wrapf(ErrDecoding, "string: %v", err)
		}
		return parseString(s)
	case 'n', 't', 'f', '[':
		return N{}, errors.Wrapf(ErrDecoding, "unexpected %s", data)
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return N{}, errors.Wrapf(ErrDecoding, "number: %v", err)
	}
	return decodeNumber(num.String(), digits)
}

// decodeNumber converts a number literal: integers exactly, anything else
// through TryFromDecimal.
func decodeNumber(lit string, digits int) (N, error) {
	if i, err := json.Number(lit).Int64(); err == nil {
		return TryInt(i)
	}
	f, err := json.Number(lit).Float64()
	if err != nil {
		return N{}, errors.Wrapf(ErrDecoding, "number %s: %v", lit, err)
	}
	return TryFromDecimal(f, digits)
}

// parseString decodes the string form of a fraction with Parse. Illegal
// fields are reported as by the object form; any other failure is
// ErrDecoding.
func parseString(s string) (N, error) {
	x, err := Parse(s)
	switch {
	case err == nil:
		return x, nil
	case errors.Is(err, ErrIllegalNumerator), errors.Is(err, ErrIllegalDenominator):
		return N{}, errors.Wrapf(err, "parsing %q", s)
	}
	return N{}, errors.Wrapf(ErrDecoding, "parsing %q: %v", s, err)
}

// MarshalText implements [encoding.TextMarshaler] using String.
func (x N) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using Parse.
func (x *N) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// MarshalYAML implements [yaml.Marshaler]. Like MarshalJSON, the result is
// a mapping with the keys numerator and denominator.
func (x N) MarshalYAML() (interface{}, error) {
	return recordOf(x), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] with DefaultDigits of
// precision. See DecodeYAML.
func (x *N) UnmarshalYAML(node *yaml.Node) error {
	z, err := DecodeYAML(node, DefaultDigits)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// DecodeYAML decodes a fraction from a YAML node, accepting the same forms
// as DecodeJSON: a mapping with numerator and denominator, an integer, a
// float converted with the given number of digits, or a string for Parse.
func DecodeYAML(node *yaml.Node, digits int) (N, error) {
	if node == nil {
		return N{}, errors.Wrap(ErrDecoding, "nil node")
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 1 {
			return DecodeYAML(node.Content[0], digits)
		}
	case yaml.AliasNode:
		return DecodeYAML(node.Alias, digits)
	case yaml.MappingNode:
		var r record
		if err := node.Decode(&r); err != nil {
			return N{}, errors.Wrapf(ErrDecoding, "mapping: %v", err)
		}
		return r.fraction()
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int":
			var i int64
			if err := node.Decode(&i); err != nil {
				return N{}, errors.Wrapf(ErrDecoding, "integer: %v", err)
			}
			return TryInt(i)
		case "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return N{}, errors.Wrapf(ErrDecoding, "float: %v", err)
			}
			return TryFromDecimal(f, digits)
		case "!!str":
			return parseString(node.Value)
		}
	}
	return N{}, errors.Wrapf(ErrDecoding, "line %d: unsupported node %s", node.Line, node.ShortTag())
}
