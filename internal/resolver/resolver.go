// Package resolver maps a user-supplied cluster identifier to exactly one
// cluster.
package resolver

import (
	"context"
	"fmt"

	"github.com/giantswarm/mmaictl/internal/record"
)

// ClustersPath is the collection every resolution lists.
const ClustersPath = "clusters"

// ClusterRef identifies a cluster. UID is canonical; Name may repeat.
type ClusterRef struct {
	Name string
	UID  string
}

// Getter is the subset of the API client the resolver needs.
type Getter interface {
	Get(ctx context.Context, path string) (record.Value, error)
}

// Resolve picks one cluster from clusters.
//
// With an identifier, the first cluster whose name or uid equals it wins.
// Without one, a single cluster is selected implicitly, zero clusters is
// NotFound and several is Ambiguous.
func Resolve(identifier string, clusters []ClusterRef) (ClusterRef, error) {
	if identifier != "" {
		for _, c := range clusters {
			if c.Name == identifier || c.UID == identifier {
				return c, nil
			}
		}
		return ClusterRef{}, &NotFoundError{Identifier: identifier}
	}

	switch len(clusters) {
	case 0:
		return ClusterRef{}, &NotFoundError{}
	case 1:
		return clusters[0], nil
	default:
		names := make([]string, len(clusters))
		for i, c := range clusters {
			names[i] = c.Name
		}
		return ClusterRef{}, &AmbiguousError{Names: names}
	}
}

// FromRecords extracts cluster references from a clusters listing. Non-map
// items are skipped.
func FromRecords(list record.Value) []ClusterRef {
	items := list.Items()
	refs := make([]ClusterRef, 0, len(items))
	for _, item := range items {
		if !item.IsMap() {
			continue
		}
		refs = append(refs, ClusterRef{
			Name: item.StringField("name"),
			UID:  item.StringField("uid"),
		})
	}
	return refs
}

// List fetches all clusters.
func List(ctx context.Context, g Getter) ([]ClusterRef, error) {
	list, err := g.Get(ctx, ClustersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	return FromRecords(list), nil
}

// Lookup lists clusters and resolves identifier against them.
func Lookup(ctx context.Context, g Getter, identifier string) (ClusterRef, error) {
	clusters, err := List(ctx, g)
	if err != nil {
		return ClusterRef{}, err
	}
	return Resolve(identifier, clusters)
}
