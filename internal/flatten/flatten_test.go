package flatten

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mmaictl/internal/record"
)

// unflatten re-nests pairs by splitting keys on the separator.
func unflatten(f Flat) record.Value {
	root := record.Map()
	for _, p := range f {
		root = insert(root, strings.Split(p.Key, Separator), p.Value)
	}
	return root
}

func insert(m record.Value, path []string, v record.Value) record.Value {
	if len(path) == 1 {
		return m.With(path[0], v)
	}
	child, ok := m.Get(path[0])
	if !ok || !child.IsMap() {
		child = record.Map()
	}
	return m.With(path[0], insert(child, path[1:], v))
}

func sampleNodeGroup() record.Value {
	return record.Map(
		record.F("name", record.String("gpu-pool")),
		record.F("uid", record.String("ng-1")),
		record.F("spec", record.Map(
			record.F("replicas", record.Int(3)),
			record.F("resources", record.Map(
				record.F("gpu", record.String("a100")),
				record.F("count", record.Int(8)),
			)),
			record.F("labels", record.List(record.String("hpc"), record.String("training"))),
		)),
		record.F("ready", record.Bool(true)),
		record.F("owner", record.Null()),
	)
}

func TestFlatten_ExpandsNestedMapsInOrder(t *testing.T) {
	got := Flatten(sampleNodeGroup(), "")

	assert.Equal(t, []string{
		"name",
		"uid",
		"spec.replicas",
		"spec.resources.gpu",
		"spec.resources.count",
		"spec.labels",
		"ready",
		"owner",
	}, got.Keys())

	labels, ok := got.Get("spec.labels")
	require.True(t, ok)
	assert.True(t, labels.IsList(), "lists are leaves")
	assert.Equal(t, `["hpc","training"]`, labels.Display())
}

func TestFlatten_RenestRoundTrip(t *testing.T) {
	rec := sampleNodeGroup()
	assert.True(t, unflatten(Flatten(rec, "")).Equal(rec))
}

func TestFlatten_EmptyMapProducesNoPairs(t *testing.T) {
	rec := record.Map(
		record.F("name", record.String("x")),
		record.F("meta", record.Map()),
	)

	got := Flatten(rec, "")
	assert.Equal(t, []string{"name"}, got.Keys())
}

func TestFlatten_WithPrefix(t *testing.T) {
	rec := record.Map(record.F("name", record.String("finance")))
	prefix := Keyed("cluster", "a").Indexed("department", 0)

	got := Flatten(rec, prefix)

	require.Len(t, got, 1)
	assert.Equal(t, "cluster[a].department[0].name", got[0].Key)
	assert.Equal(t, []string{"cluster[a].department[0].name: finance"}, got.Lines())
}

func TestFlatten_ScalarRecord(t *testing.T) {
	got := Flatten(record.String("finance"), Indexed("department", 2))

	require.Len(t, got, 1)
	assert.Equal(t, "department[2]", got[0].Key)
}

func TestFlatten_DoesNotMutateInput(t *testing.T) {
	rec := sampleNodeGroup()
	before := rec.Compact()

	_ = Flatten(rec, Indexed("nodegroup", 0))

	assert.Equal(t, before, rec.Compact())
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix Prefix
		want   string
	}{
		{name: "indexed root", prefix: Indexed("cluster", 1), want: "cluster[1]"},
		{name: "keyed root", prefix: Keyed("cluster", "gpu-a"), want: "cluster[gpu-a]"},
		{name: "nested", prefix: Keyed("cluster", "a").Indexed("nodegroup", 3), want: "cluster[a].nodegroup[3]"},
		{name: "from empty", prefix: Prefix("").Indexed("billing", 0), want: "billing[0]"},
		{name: "field", prefix: Indexed("billing", 0).Field("cost"), want: "billing[0].cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(tt.prefix))
		})
	}
}

func TestTrim(t *testing.T) {
	root := Keyed("cluster", "a")

	assert.Equal(t, "department[0].name", Trim("cluster[a].department[0].name", root))
	assert.Equal(t, "other.key", Trim("other.key", root))
	assert.Equal(t, "name", Trim("name", ""))
}
