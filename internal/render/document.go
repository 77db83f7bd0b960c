package render

import (
	"github.com/giantswarm/mmaictl/internal/aggregate"
	"github.com/giantswarm/mmaictl/internal/flatten"
	"github.com/giantswarm/mmaictl/internal/record"
)

// ContextCluster is the prefix name used for the owning cluster.
const ContextCluster = "cluster"

// Entry is one record in a Document.
type Entry struct {
	// Context is the owning group, usually a cluster name. Empty when the
	// document is not grouped.
	Context string

	// Index is the record's position within its group.
	Index int

	Record record.Value
}

// Document is a renderable collection of records of one kind.
type Document struct {
	// Kind names the records, for example "department". It becomes the
	// indexed segment of every flattened key.
	Kind string

	// Grouped documents render per Context.
	Grouped bool

	// NamesOnly documents carry a name value per entry instead of a record.
	NamesOnly bool

	// Single documents carry exactly one unprefixed record.
	Single bool

	Entries []Entry
}

// Grouped builds a document of aggregated items keyed by cluster.
func Grouped(kind string, items []aggregate.Item) Document {
	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = Entry{Context: it.Cluster, Index: it.Index, Record: it.Record}
	}
	return Document{Kind: kind, Grouped: true, Entries: entries}
}

// GroupedNames builds a names-only document of aggregated items.
func GroupedNames(kind string, items []aggregate.Item) Document {
	d := Grouped(kind, aggregate.Names(items))
	d.NamesOnly = true
	return d
}

// List builds an ungrouped document from records in order.
func List(kind string, recs []record.Value) Document {
	entries := make([]Entry, len(recs))
	for i, rec := range recs {
		entries[i] = Entry{Index: i, Record: rec}
	}
	return Document{Kind: kind, Entries: entries}
}

// Single builds a document holding one record. Its keys are not prefixed;
// a reply that is not an object is keyed by kind.
func Single(kind string, rec record.Value) Document {
	return Document{Kind: kind, Single: true, Entries: []Entry{{Record: rec}}}
}

// prefix is the fully qualified root of e's flattened keys.
func (d Document) prefix(e Entry) flatten.Prefix {
	var p flatten.Prefix
	switch {
	case d.Single:
		// A scalar or list reply has no keys of its own.
		if !e.Record.IsMap() {
			p = flatten.Prefix(d.Kind)
		}
	case d.Grouped:
		p = flatten.Keyed(ContextCluster, e.Context).Indexed(d.Kind, e.Index)
	default:
		p = flatten.Indexed(d.Kind, e.Index)
	}
	if d.NamesOnly {
		p = p.Field("name")
	}
	return p
}

// groupPrefix is the part of e's prefix that text output moves into the
// group header.
func (d Document) groupPrefix(e Entry) flatten.Prefix {
	if !d.Grouped {
		return ""
	}
	return flatten.Keyed(ContextCluster, e.Context)
}

// contexts returns the distinct entry contexts in first-seen order.
func (d Document) contexts() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range d.Entries {
		if !seen[e.Context] {
			seen[e.Context] = true
			out = append(out, e.Context)
		}
	}
	return out
}
