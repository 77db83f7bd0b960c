package projection

import (
	"fmt"
	"strings"
)

const (
	// maxPathDepth bounds the number of segments in a single field path.
	maxPathDepth = 20

	// maxFields bounds the number of paths in one --filter expression.
	maxFields = 50
)

// Path is a parsed dot-separated field path such as "cpu.cores".
type Path struct {
	raw      string
	segments []string
}

// ParsePath parses a dot path. Empty paths, empty segments and paths deeper
// than maxPathDepth are rejected.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("field path cannot be empty")
	}
	segments := strings.Split(s, ".")
	if len(segments) > maxPathDepth {
		return Path{}, fmt.Errorf("field path too deep: %q has %d segments (maximum allowed: %d)", s, len(segments), maxPathDepth)
	}
	for _, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("field path contains an empty segment: %q", s)
		}
	}
	return Path{raw: s, segments: segments}, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for constants.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseList parses a comma-separated list of paths, as given to --filter.
// Surrounding whitespace is trimmed from each entry; an empty list yields nil.
func ParseList(s string) ([]Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > maxFields {
		return nil, fmt.Errorf("too many fields: %d (maximum allowed: %d)", len(parts), maxFields)
	}
	paths := make([]Path, 0, len(parts))
	for _, part := range parts {
		p, err := ParsePath(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// String returns the path as written.
func (p Path) String() string { return p.raw }

// Segments returns a copy of the path's keys.
func (p Path) Segments() []string {
	cp := make([]string, len(p.segments))
	copy(cp, p.segments)
	return cp
}
