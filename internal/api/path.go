package api

import (
	"net/url"
	"strings"
)

// Path joins segments into a request path relative to the base URL. Every
// segment is path-escaped, so names containing "/" or spaces stay one segment.
func Path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}
