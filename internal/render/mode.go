package render

import (
	"fmt"
	"strings"
)

// Mode selects an output encoding.
type Mode string

// Supported output modes.
const (
	ModeText  Mode = "text"
	ModeDot   Mode = "dot"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
	ModeTable Mode = "table"
)

// modeAliases maps accepted spellings onto a Mode.
var modeAliases = map[string]Mode{
	"":        ModeText,
	"default": ModeText,
	"text":    ModeText,
	"dot":     ModeDot,
	"json":    ModeJSON,
	"yaml":    ModeYAML,
	"table":   ModeTable,
}

// Modes lists the canonical mode names for flag help.
func Modes() []string {
	return []string{string(ModeText), string(ModeDot), string(ModeJSON), string(ModeYAML), string(ModeTable)}
}

// ParseMode maps a flag value onto a Mode. Empty and "default" mean text.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(Modes(), ", "))
}
