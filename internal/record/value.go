package record

import (
	"math/big"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindMissing marks a value that was requested but is absent from the source record.
	KindMissing Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindMap
	KindList
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Field is one key/value entry of a map Value.
type Field struct {
	Key   string
	Value Value
}

// Value is an immutable JSON-like value. The zero Value is Missing.
//
// Maps keep their keys in insertion order, which for decoded records is the
// order the keys appeared in the server response.
type Value struct {
	kind   Kind
	text   string // string contents or number literal
	flag   bool
	fields []Field
	items  []Value
}

// Missing returns the explicit "absent" value.
func Missing() Value { return Value{kind: KindMissing} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Int returns a number value for an integer.
func Int(i int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)} }

// Float returns a number value for a float.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number value holding the literal exactly as given.
// The literal is expected to be a valid JSON number.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// Map returns a map value. When a key repeats, the later value replaces the
// earlier one but keeps the earlier position.
func Map(fields ...Field) Value {
	out := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		index[f.Key] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindMap, fields: out}
}

// List returns a sequence value.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// F is shorthand for building a Field.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the Missing value.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsMap reports whether v is a map.
func (v Value) IsMap() bool { return v.kind == KindMap }

// IsList reports whether v is a sequence.
func (v Value) IsList() bool { return v.kind == KindList }

// Len returns the number of fields of a map or items of a list, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.fields)
	case KindList:
		return len(v.items)
	default:
		return 0
	}
}

// Text returns the string contents for strings and the literal for numbers.
func (v Value) Text() (string, bool) {
	if v.kind == KindString || v.kind == KindNumber {
		return v.text, true
	}
	return "", false
}

// BoolValue returns the boolean held by v.
func (v Value) BoolValue() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Fields returns a copy of the map fields in order. It is nil for non-maps.
func (v Value) Fields() []Field {
	if v.kind != KindMap {
		return nil
	}
	cp := make([]Field, len(v.fields))
	copy(cp, v.fields)
	return cp
}

// Keys returns the map keys in order.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.fields))
	for i, f := range v.fields {
		keys[i] = f.Key
	}
	return keys
}

// Items returns a copy of the list items. It is nil for non-lists.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Get returns the value stored under key in a map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Missing(), false
	}
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Missing(), false
}

// Lookup walks the map keys in path. It returns Missing and false as soon as
// a key is absent or an intermediate value is not a map.
func (v Value) Lookup(path []string) (Value, bool) {
	current := v
	for _, key := range path {
		next, ok := current.Get(key)
		if !ok {
			return Missing(), false
		}
		current = next
	}
	return current, true
}

// StringField returns the string stored under key, or "" when absent or not a string.
func (v Value) StringField(key string) string {
	f, ok := v.Get(key)
	if !ok || f.kind != KindString {
		return ""
	}
	return f.text
}

// With returns a copy of the map with key set to val. Non-map receivers are
// treated as an empty map.
func (v Value) With(key string, val Value) Value {
	fields := v.Fields()
	return Map(append(fields, F(key, val))...)
}

// Equal reports whether two values are structurally identical, including
// map key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString, KindNumber:
		return v.text == o.text
	case KindBool:
		return v.flag == o.flag
	case KindMap:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for i := range v.fields {
			if v.fields[i].Key != o.fields[i].Key || !v.fields[i].Value.Equal(o.fields[i].Value) {
				return false
			}
		}
		return true
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Interface converts v into plain Go values (map[string]any, []any, string,
// int, *big.Int, float64, bool, nil). Integers beyond int64 become *big.Int. Map key order is lost. Missing converts to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return int(i)
		}
		if n, ok := new(big.Int).SetString(v.text, 10); ok {
			return n
		}
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v.text
		}
		return f
	case KindBool:
		return v.flag
	case KindMap:
		m := make(map[string]any, len(v.fields))
		for _, f := range v.fields {
			m[f.Key] = f.Value.Interface()
		}
		return m
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}
