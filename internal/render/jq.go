package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/giantswarm/mmaictl/internal/record"
)

// writeJQ runs query against the JSON structure of d. String results are
// written raw, everything else as indented JSON, one result per line.
func writeJQ(w io.Writer, d Document, query string) error {
	q, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("invalid jq expression %q: %w", query, err)
	}

	bw := bufio.NewWriter(w)
	iter := q.Run(Structure(d).Interface())
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq: %w", err)
		}
		if s, isString := v.(string); isString {
			fmt.Fprintln(bw, s)
			continue
		}
		b, err := record.EncodeUnescaped(v, "  ")
		if err != nil {
			return fmt.Errorf("jq: failed to encode result: %w", err)
		}
		fmt.Fprintln(bw, string(b))
	}
	return bw.Flush()
}
