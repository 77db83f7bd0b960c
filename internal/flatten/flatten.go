// Package flatten collapses nested records into dot-path keyed pairs.
//
// Flattened output from many records can be merged into one listing because
// callers give each record a synthetic [Prefix] that encodes where it came
// from, for example cluster[gpu-a].department[0].
package flatten

import (
	"strconv"
	"strings"

	"github.com/giantswarm/mmaictl/internal/record"
)

// Separator joins path segments.
const Separator = "."

// Pair is one flattened leaf.
type Pair struct {
	Key   string
	Value record.Value
}

// Flat is an ordered flattened record.
type Flat []Pair

// Flatten expands every nested map of rec into dot-joined keys under prefix.
// Any non-map value, lists included, is a leaf stored as-is. Lists are not
// descended into. An empty nested map contributes no pairs.
//
// A non-map rec is itself a leaf stored under prefix.
func Flatten(rec record.Value, prefix Prefix) Flat {
	if !rec.IsMap() {
		return Flat{{Key: string(prefix), Value: rec}}
	}
	var out Flat
	walk(rec, string(prefix), &out)
	return out
}

func walk(v record.Value, parent string, out *Flat) {
	for _, f := range v.Fields() {
		key := join(parent, f.Key)
		if f.Value.IsMap() {
			walk(f.Value, key, out)
			continue
		}
		*out = append(*out, Pair{Key: key, Value: f.Value})
	}
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + Separator + key
}

// Get returns the value stored under key.
func (f Flat) Get(key string) (record.Value, bool) {
	for _, p := range f {
		if p.Key == key {
			return p.Value, true
		}
	}
	return record.Missing(), false
}

// Keys returns the flattened keys in order.
func (f Flat) Keys() []string {
	keys := make([]string, len(f))
	for i, p := range f {
		keys[i] = p.Key
	}
	return keys
}

// Lines renders each pair as "key: value".
func (f Flat) Lines() []string {
	lines := make([]string, len(f))
	for i, p := range f {
		lines[i] = p.Key + ": " + p.Value.Display()
	}
	return lines
}

// Prefix is a synthetic path prefix such as cluster[a].department[0].
type Prefix string

// Indexed returns a root prefix segment "name[i]".
func Indexed(name string, i int) Prefix {
	return Prefix(name + "[" + strconv.Itoa(i) + "]")
}

// Keyed returns a root prefix segment "name[key]".
func Keyed(name, key string) Prefix {
	return Prefix(name + "[" + key + "]")
}

// Indexed appends a "name[i]" segment.
func (p Prefix) Indexed(name string, i int) Prefix {
	return p.append(Indexed(name, i))
}

// Keyed appends a "name[key]" segment.
func (p Prefix) Keyed(name, key string) Prefix {
	return p.append(Keyed(name, key))
}

// Field appends a plain field segment.
func (p Prefix) Field(name string) Prefix {
	return p.append(Prefix(name))
}

func (p Prefix) append(seg Prefix) Prefix {
	if p == "" {
		return seg
	}
	return p + Separator + seg
}

// Trim removes root from the start of key. Keys outside root are returned
// unchanged.
func Trim(key string, root Prefix) string {
	if root == "" {
		return key
	}
	if rest, ok := strings.CutPrefix(key, string(root)+Separator); ok {
		return rest
	}
	return key
}
