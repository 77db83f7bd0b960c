package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/giantswarm/mmaictl/internal/flatten"
	"github.com/giantswarm/mmaictl/internal/record"
)

// Options selects how a Document is written.
type Options struct {
	Mode Mode

	// JQ, when set, is evaluated against the JSON structure and its results
	// are written instead of Mode's encoding.
	JQ string
}

// Write renders d to w.
func Write(w io.Writer, d Document, opts Options) error {
	if opts.JQ != "" {
		return writeJQ(w, d, opts.JQ)
	}
	switch opts.Mode {
	case ModeText, "":
		return writeText(w, d)
	case ModeDot:
		return writeDot(w, d)
	case ModeJSON:
		return writeJSON(w, d)
	case ModeYAML:
		return writeYAML(w, d)
	case ModeTable:
		return writeTable(w, d)
	default:
		return fmt.Errorf("unsupported output mode %q", opts.Mode)
	}
}

// Lines returns the fully qualified dot lines of d.
func Lines(d Document) []string {
	var lines []string
	for _, e := range d.Entries {
		lines = append(lines, flatten.Flatten(e.Record, d.prefix(e)).Lines()...)
	}
	return lines
}

func writeDot(w io.Writer, d Document) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(d) {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

// writeText groups entries under a [context] header with keys relative to
// the group. Ungrouped documents print without headers.
func writeText(w io.Writer, d Document) error {
	bw := bufio.NewWriter(w)
	if !d.Grouped {
		for _, e := range d.Entries {
			writeEntryText(bw, d, e)
		}
		return bw.Flush()
	}

	for _, ctx := range d.contexts() {
		fmt.Fprintf(bw, "[%s]\n", ctx)
		for _, e := range d.Entries {
			if e.Context == ctx {
				writeEntryText(bw, d, e)
			}
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func writeEntryText(w io.Writer, d Document, e Entry) {
	if d.NamesOnly {
		fmt.Fprintln(w, e.Record.Display())
		return
	}
	root := d.groupPrefix(e)
	for _, p := range flatten.Flatten(e.Record, d.prefix(e)) {
		fmt.Fprintf(w, "%s: %s\n", flatten.Trim(p.Key, root), p.Value.Display())
	}
}

// Structure returns the unflattened value that json, yaml and jq output
// encode: an object keyed by context for grouped documents, an array for
// lists, and the record itself for single documents.
func Structure(d Document) record.Value {
	switch {
	case d.Single:
		if len(d.Entries) == 0 {
			return record.Null()
		}
		return d.Entries[0].Record
	case d.Grouped:
		groups := make(map[string][]record.Value)
		for _, e := range d.Entries {
			groups[e.Context] = append(groups[e.Context], e.Record)
		}
		ctxs := d.contexts()
		fields := make([]record.Field, len(ctxs))
		for i, ctx := range ctxs {
			fields[i] = record.F(ctx, record.List(groups[ctx]...))
		}
		return record.Map(fields...)
	default:
		items := make([]record.Value, len(d.Entries))
		for i, e := range d.Entries {
			items[i] = e.Record
		}
		return record.List(items...)
	}
}

func writeJSON(w io.Writer, d Document) error {
	b, err := Structure(d).Indent()
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
