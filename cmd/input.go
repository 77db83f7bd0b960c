package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/giantswarm/mmaictl/internal/projection"
	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/resource"
)

// ErrMalformedInput indicates a flag or argument value that cannot be used,
// such as a --set entry without "=" or an invalid --filter path.
var ErrMalformedInput = errors.New("malformed input")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// parseFields parses a --filter value. Empty input means no projection.
func parseFields(s string) ([]projection.Path, error) {
	paths, err := projection.ParseList(s)
	if err != nil {
		return nil, fmt.Errorf("%w: --filter: %w", ErrMalformedInput, err)
	}
	return paths, nil
}

// parseProperties parses repeated --set key=value entries. Values that are
// valid JSON keep their type; anything else is sent as a string.
func parseProperties(entries []string) ([]resource.Property, error) {
	props := make([]resource.Property, 0, len(entries))
	for _, entry := range entries {
		key, raw, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, malformed("property %q must be key=value", entry)
		}
		props = append(props, resource.Property{Key: key, Value: propertyValue(raw)})
	}
	return props, nil
}

func propertyValue(raw string) record.Value {
	if json.Valid([]byte(raw)) {
		if v, err := record.Parse([]byte(raw)); err == nil {
			return v
		}
	}
	return record.String(raw)
}
