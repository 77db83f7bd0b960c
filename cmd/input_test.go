package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	props, err := parseProperties([]string{
		"quota=4",
		"enabled=true",
		"labels={\"team\":\"ml\"}",
		"owner=alice",
		"version=1.2.3",
		"note=a=b",
		"empty=",
	})
	require.NoError(t, err)

	got := make(map[string]string, len(props))
	for _, p := range props {
		got[p.Key] = p.Value.Compact()
	}
	assert.Equal(t, map[string]string{
		"quota":   `4`,
		"enabled": `true`,
		"labels":  `{"team":"ml"}`,
		"owner":   `"alice"`,
		"version": `"1.2.3"`,
		"note":    `"a=b"`,
		"empty":   `""`,
	}, got)
	assert.Equal(t, "quota", props[0].Key, "order is kept")
}

func TestParseProperties_Malformed(t *testing.T) {
	for _, entry := range []string{"novalue", "=4", " =x"} {
		t.Run(entry, func(t *testing.T) {
			_, err := parseProperties([]string{entry})
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestParseFields(t *testing.T) {
	paths, err := parseFields("")
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = parseFields("name, quota.gpus")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "quota.gpus", paths[1].String())

	_, err = parseFields("a..b")
	assert.ErrorIs(t, err, ErrMalformedInput)
}
