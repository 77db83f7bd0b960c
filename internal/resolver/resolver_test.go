package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mmaictl/internal/record"
)

var (
	clusterA = ClusterRef{Name: "a", UID: "u1"}
	clusterB = ClusterRef{Name: "b", UID: "u2"}
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		clusters   []ClusterRef
		want       ClusterRef
		wantErr    error
	}{
		{name: "single cluster implicit", clusters: []ClusterRef{clusterA}, want: clusterA},
		{name: "by name", identifier: "b", clusters: []ClusterRef{clusterA, clusterB}, want: clusterB},
		{name: "by uid", identifier: "u1", clusters: []ClusterRef{clusterA, clusterB}, want: clusterA},
		{name: "unknown identifier", identifier: "zz", clusters: []ClusterRef{clusterA, clusterB}, wantErr: ErrNotFound},
		{name: "no clusters", wantErr: ErrNotFound},
		{name: "no clusters with identifier", identifier: "a", wantErr: ErrNotFound},
		{name: "several clusters implicit", clusters: []ClusterRef{clusterA, clusterB}, wantErr: ErrAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.identifier, tt.clusters)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	dup := ClusterRef{Name: "a", UID: "u9"}

	got, err := Resolve("a", []ClusterRef{clusterA, dup})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
}

func TestResolve_AmbiguousListsNames(t *testing.T) {
	_, err := Resolve("", []ClusterRef{clusterA, clusterB})

	var amb *AmbiguousError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, []string{"a", "b"}, amb.Names)
	assert.Contains(t, err.Error(), "a, b")
}

func TestResolve_NotFoundMessages(t *testing.T) {
	_, err := Resolve("zz", []ClusterRef{clusterA})
	assert.EqualError(t, err, `cluster "zz" not found`)

	_, err = Resolve("", nil)
	assert.EqualError(t, err, "no clusters found")
}

func TestFromRecords(t *testing.T) {
	list := record.List(
		record.Map(record.F("uid", record.String("u1")), record.F("name", record.String("a"))),
		record.String("garbage"),
		record.Map(record.F("name", record.String("b")), record.F("uid", record.String("u2"))),
	)

	assert.Equal(t, []ClusterRef{clusterA, clusterB}, FromRecords(list))
	assert.Empty(t, FromRecords(record.Null()))
}

type stubGetter struct {
	value record.Value
	err   error
	paths []string
}

func (s *stubGetter) Get(_ context.Context, path string) (record.Value, error) {
	s.paths = append(s.paths, path)
	return s.value, s.err
}

func TestLookup(t *testing.T) {
	g := &stubGetter{value: record.List(
		record.Map(record.F("name", record.String("a")), record.F("uid", record.String("u1"))),
	)}

	got, err := Lookup(context.Background(), g, "")
	require.NoError(t, err)

	assert.Equal(t, clusterA, got)
	assert.Equal(t, []string{"clusters"}, g.paths)
}

func TestLookup_ListError(t *testing.T) {
	g := &stubGetter{err: errors.New("connection refused")}

	_, err := Lookup(context.Background(), g, "a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list clusters")
	assert.NotErrorIs(t, err, ErrNotFound)
}
