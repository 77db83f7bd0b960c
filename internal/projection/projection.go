// Package projection selects a caller-chosen subset of fields from records.
package projection

import (
	"github.com/giantswarm/mmaictl/internal/record"
)

// Project returns a new map holding one top-level key per path, in the order
// given. The key is the dot path itself; it is not re-nested. Paths that do
// not resolve map to record.Missing, so every requested key is present.
func Project(rec record.Value, paths []Path) record.Value {
	fields := make([]record.Field, 0, len(paths))
	for _, p := range paths {
		v, ok := rec.Lookup(p.segments)
		if !ok {
			v = record.Missing()
		}
		fields = append(fields, record.F(p.raw, v))
	}
	return record.Map(fields...)
}

// ProjectAll applies Project to each record independently.
func ProjectAll(recs []record.Value, paths []Path) []record.Value {
	out := make([]record.Value, len(recs))
	for i, rec := range recs {
		out[i] = Project(rec, paths)
	}
	return out
}

// Apply projects rec when paths is non-empty and returns it unchanged otherwise.
func Apply(rec record.Value, paths []Path) record.Value {
	if len(paths) == 0 {
		return rec
	}
	return Project(rec, paths)
}
