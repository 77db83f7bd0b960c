package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// maxDepth bounds nesting when decoding untrusted responses.
const maxDepth = 128

// ErrTooDeep is returned when a document nests deeper than the decoder allows.
var ErrTooDeep = errors.New("record: document nested too deeply")

// Parse decodes a JSON document into a Value, preserving object key order.
// An empty or whitespace-only document decodes to Null.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Null(), nil
	}
	raw, typ, end, err := jsonparser.Get(data)
	if err != nil {
		return Missing(), fmt.Errorf("record: invalid JSON: %w", err)
	}
	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return Missing(), fmt.Errorf("record: invalid JSON: unexpected data after top-level value: %q", truncate(rest))
	}
	return decode(raw, typ, 0)
}

func truncate(b []byte) string {
	const limit = 32
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}

func decode(raw []byte, typ jsonparser.ValueType, depth int) (Value, error) {
	if depth > maxDepth {
		return Missing(), ErrTooDeep
	}

	switch typ {
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Missing(), fmt.Errorf("record: invalid string: %w", err)
		}
		return String(s), nil
	case jsonparser.Number:
		return Number(string(raw)), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Missing(), fmt.Errorf("record: invalid boolean: %w", err)
		}
		return Bool(b), nil
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Object:
		var fields []Field
		err := jsonparser.ObjectEach(raw, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			child, err := decode(value, vt, depth+1)
			if err != nil {
				return err
			}
			fields = append(fields, F(string(key), child))
			return nil
		})
		if err != nil {
			return Missing(), err
		}
		return Map(fields...), nil
	case jsonparser.Array:
		var (
			items   []Value
			itemErr error
		)
		_, err := jsonparser.ArrayEach(raw, func(value []byte, vt jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			child, err := decode(value, vt, depth+1)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, child)
		})
		if itemErr != nil {
			return Missing(), itemErr
		}
		if err != nil {
			return Missing(), fmt.Errorf("record: invalid array: %w", err)
		}
		return List(items...), nil
	default:
		return Missing(), fmt.Errorf("record: unsupported JSON value %q", string(raw))
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. Map keys keep their order and
// Missing encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compact returns the single-line JSON encoding of v.
func (v Value) Compact() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}

// Indent returns the JSON encoding of v indented with two spaces.
func (v Value) Indent() ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindMissing, KindNull:
		buf.WriteString("null")
	case KindString:
		if err := writeString(buf, v.text); err != nil {
			return err
		}
	case KindNumber:
		buf.WriteString(v.text)
	case KindBool:
		if v.flag {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindMap:
		buf.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, f.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("record: cannot encode kind %d", v.kind)
	}
	return nil
}

// writeString writes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	b, err := EncodeUnescaped(s, "")
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// EncodeUnescaped encodes a plain Go value like json.Marshal but leaves &,
// < and > as they are. A non-empty indent pretty-prints the output.
func EncodeUnescaped(v any, indent string) ([]byte, error) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}
