package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/mmaictl/internal/aggregate"
	"github.com/giantswarm/mmaictl/internal/record"
)

func departments() []aggregate.Item {
	return []aggregate.Item{
		{Cluster: "a", Index: 0, Record: record.Map(
			record.F("name", record.String("finance")),
			record.F("quota", record.Map(record.F("gpus", record.Int(4)))),
		)},
		{Cluster: "a", Index: 1, Record: record.Map(
			record.F("name", record.String("research")),
		)},
		{Cluster: "b", Index: 0, Record: record.Map(
			record.F("name", record.String("ops")),
		)},
	}
}

func write(t *testing.T, d Document, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, opts))
	return buf.String()
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeText},
		{in: "default", want: ModeText},
		{in: "text", want: ModeText},
		{in: "DOT", want: ModeDot},
		{in: "json", want: ModeJSON},
		{in: "yaml", want: ModeYAML},
		{in: "table", want: ModeTable},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDot_FullyQualifiedKey(t *testing.T) {
	rec := record.Map(record.F("cluster[a].department[0].name", record.String("finance")))

	out := write(t, Single("department", rec), Options{Mode: ModeDot})

	assert.Equal(t, "cluster[a].department[0].name: finance\n", out)
}

func TestDot_Grouped(t *testing.T) {
	out := write(t, Grouped("department", departments()), Options{Mode: ModeDot})

	want := strings.Join([]string{
		"cluster[a].department[0].name: finance",
		"cluster[a].department[0].quota.gpus: 4",
		"cluster[a].department[1].name: research",
		"cluster[b].department[0].name: ops",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestDot_Names(t *testing.T) {
	out := write(t, GroupedNames("nodegroup", departments()[:1]), Options{Mode: ModeDot})

	assert.Equal(t, "cluster[a].nodegroup[0].name: finance\n", out)
}

func TestText_Grouped(t *testing.T) {
	out := write(t, Grouped("department", departments()), Options{Mode: ModeText})

	want := "[a]\n" +
		"department[0].name: finance\n" +
		"department[0].quota.gpus: 4\n" +
		"department[1].name: research\n" +
		"\n" +
		"[b]\n" +
		"department[0].name: ops\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestText_GroupedNames(t *testing.T) {
	out := write(t, GroupedNames("department", departments()), Options{})

	assert.Equal(t, "[a]\nfinance\nresearch\n\n[b]\nops\n\n", out)
}

func TestText_UngroupedAndSingle(t *testing.T) {
	recs := []record.Value{
		record.Map(record.F("amount", record.Number("12.50")), record.F("paid", record.Bool(false))),
		record.Map(record.F("amount", record.Missing())),
	}

	out := write(t, List("billing", recs), Options{Mode: ModeText})
	assert.Equal(t, "billing[0].amount: 12.50\nbilling[0].paid: false\nbilling[1].amount: <none>\n", out)

	out = write(t, Single("cluster", recs[0]), Options{Mode: ModeText})
	assert.Equal(t, "amount: 12.50\npaid: false\n", out)
}

func TestText_Empty(t *testing.T) {
	assert.Empty(t, write(t, Grouped("node", nil), Options{}))
}

func TestJSON_Grouped(t *testing.T) {
	out := write(t, GroupedNames("department", departments()), Options{Mode: ModeJSON})

	want := `{
  "a": [
    "finance",
    "research"
  ],
  "b": [
    "ops"
  ]
}
`
	assert.Equal(t, want, out)
}

func TestJSON_ListAndSingle(t *testing.T) {
	recs := []record.Value{
		record.Map(record.F("z", record.Int(1)), record.F("a", record.Null())),
	}

	assert.Equal(t, "[\n  {\n    \"z\": 1,\n    \"a\": null\n  }\n]\n", write(t, List("cluster", recs), Options{Mode: ModeJSON}))
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": null\n}\n", write(t, Single("cluster", recs[0]), Options{Mode: ModeJSON}))
	assert.Equal(t, "[]\n", write(t, List("cluster", nil), Options{Mode: ModeJSON}))
}

func TestYAML_PreservesOrder(t *testing.T) {
	out := write(t, Grouped("department", departments()), Options{Mode: ModeYAML})

	assert.Less(t, strings.Index(out, "a:"), strings.Index(out, "b:"))
	assert.Less(t, strings.Index(out, "finance"), strings.Index(out, "quota"))

	var got map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got["a"], 2)
	assert.Equal(t, "finance", got["a"][0]["name"])
	assert.Equal(t, map[string]any{"gpus": 4}, got["a"][0]["quota"])
	assert.Equal(t, "ops", got["b"][0]["name"])
}

func TestYAML_QuotesAmbiguousStrings(t *testing.T) {
	rec := record.Map(record.F("flag", record.String("true")), record.F("n", record.Number("1.5")))

	out := write(t, Single("x", rec), Options{Mode: ModeYAML})

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "true", got["flag"])
	assert.Equal(t, 1.5, got["n"])
}

func TestTable(t *testing.T) {
	out := write(t, Grouped("department", departments()), Options{Mode: ModeTable})

	lines := strings.Split(out, "\n")
	var header string
	for _, l := range lines {
		if strings.Contains(l, columnCluster) {
			header = l
			break
		}
	}
	require.NotEmpty(t, header)
	assert.Less(t, strings.Index(header, "CLUSTER"), strings.Index(header, "name"))
	assert.Less(t, strings.Index(header, "name"), strings.Index(header, "quota.gpus"))
	assert.Contains(t, out, "research")
	assert.Contains(t, out, "ops")
}

func TestTable_NamesUngrouped(t *testing.T) {
	d := List("cluster", []record.Value{record.String("gpu-a")})
	d.NamesOnly = true

	out := write(t, d, Options{Mode: ModeTable})

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "gpu-a")
	assert.NotContains(t, out, columnCluster)
}

func TestJQ(t *testing.T) {
	d := Grouped("department", departments())

	assert.Equal(t, "finance\n", write(t, d, Options{JQ: ".a[0].name"}))
	assert.Equal(t, "2\n", write(t, d, Options{Mode: ModeTable, JQ: ".a | length"}))
	assert.Equal(t, "research\nops\n", write(t, d, Options{JQ: `.[][] | select(.quota == null) | .name`}))
}

func TestJQ_Errors(t *testing.T) {
	d := Grouped("department", departments())

	err := Write(&bytes.Buffer{}, d, Options{JQ: ".a["})
	assert.ErrorContains(t, err, "invalid jq expression")

	err = Write(&bytes.Buffer{}, d, Options{JQ: ".a | error(\"boom\")"})
	assert.ErrorContains(t, err, "boom")
}

func TestWrite_DoesNotMutate(t *testing.T) {
	items := departments()
	before := make([]record.Value, len(items))
	for i, it := range items {
		before[i] = it.Record
	}
	d := Grouped("department", items)

	for _, m := range []Mode{ModeText, ModeDot, ModeJSON, ModeYAML, ModeTable} {
		write(t, d, Options{Mode: m})
	}
	write(t, d, Options{JQ: ".a[0].name = \"changed\""})

	for i, it := range items {
		assert.True(t, before[i].Equal(it.Record))
		assert.True(t, before[i].Equal(d.Entries[i].Record))
	}
}

func TestJSON_NoHTMLEscaping(t *testing.T) {
	items := []aggregate.Item{{Cluster: "a", Record: record.Map(
		record.F("name", record.String("R&D")),
		record.F("description", record.String("R&D <ops>")),
	)}}
	d := Grouped("department", items)

	out := write(t, d, Options{Mode: ModeJSON})
	assert.Contains(t, out, `"description": "R&D <ops>"`)
	assert.NotContains(t, out, `\u0026`)

	out = write(t, d, Options{JQ: ".a"})
	assert.Equal(t, "[\n  {\n    \"name\": \"R&D\",\n    \"description\": \"R&D <ops>\"\n  }\n]\n", out)
}

func TestJQ_BigInteger(t *testing.T) {
	d := Single("billing", record.Map(record.F("total", record.Number("12345678901234567890"))))

	assert.Equal(t, "12345678901234567890\n", write(t, d, Options{JQ: ".total"}))
}

func TestSingle_NonMapReply(t *testing.T) {
	d := Single("cluster", record.String("ok"))

	assert.Equal(t, "cluster: ok\n", write(t, d, Options{Mode: ModeDot}))
	assert.Equal(t, "cluster: ok\n", write(t, d, Options{Mode: ModeText}))
	assert.Equal(t, "\"ok\"\n", write(t, d, Options{Mode: ModeJSON}))
}
