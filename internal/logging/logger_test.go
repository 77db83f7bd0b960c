package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    slog.Level
	}{
		{name: "default", want: slog.LevelInfo},
		{name: "verbose", verbose: true, want: slog.LevelDebug},
		{name: "quiet", quiet: true, want: LevelCritical},
		{name: "verbose wins", verbose: true, quiet: true, want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.verbose, tt.quiet))
		})
	}
}

func TestNew_QuietDropsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelFor(false, true))

	logger.Warn("no results")
	logger.Error("request failed")

	assert.Empty(t, buf.String())
}

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelFor(false, false))

	logger.Debug("hidden")
	logger.Warn("no results for cluster", Cluster("b"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "cluster=b")
}
