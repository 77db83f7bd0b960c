// Package aggregate collects one kind's items from a single cluster or from
// every cluster, tagging each item with the cluster it came from.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/giantswarm/mmaictl/internal/instrumentation"
	"github.com/giantswarm/mmaictl/internal/logging"
	"github.com/giantswarm/mmaictl/internal/projection"
	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/resolver"
)

// ClusterLister lists every cluster.
type ClusterLister interface {
	Clusters(ctx context.Context) ([]resolver.ClusterRef, error)
}

// FetchFunc fetches one cluster's collection.
type FetchFunc func(ctx context.Context, cluster resolver.ClusterRef) ([]record.Value, error)

// Options controls one collection run.
type Options struct {
	// Selector is a cluster name or uid. Empty means all clusters.
	Selector string

	// Single requires exactly one cluster. An empty selector then resolves
	// to the only cluster and fails when there are several.
	Single bool

	// Names keeps only items whose "name" field is in the set. Empty keeps all.
	Names sets.Set[string]

	// Fields projects each kept item onto these paths. Empty keeps whole records.
	Fields []projection.Path
}

// Item is one collected record and where it came from.
type Item struct {
	// Cluster is the canonical name of the owning cluster.
	Cluster string

	// Index is the item's position within its cluster after name filtering.
	Index int

	Record record.Value
}

// Aggregator runs collections. Fetches are strictly sequential.
type Aggregator struct {
	clusters ClusterLister
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
}

// New returns an Aggregator. metrics may be nil.
func New(clusters ClusterLister, logger *slog.Logger, metrics *instrumentation.Metrics) *Aggregator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Aggregator{clusters: clusters, logger: logger, metrics: metrics}
}

// Collect fetches kind from the selected cluster, or from every cluster when
// no selector is given, and concatenates the results in cluster order.
//
// A cluster that returns nothing is logged and skipped. Any fetch error
// aborts the whole collection; no partial result is returned.
func (a *Aggregator) Collect(ctx context.Context, kind string, fetch FetchFunc, opts Options) ([]Item, error) {
	ctx, span := instrumentation.StartAggregateSpan(ctx, kind, opts.Selector)
	defer span.End()

	targets, err := a.targets(ctx, opts.Selector, opts.Single)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, err
	}

	log := logging.WithOperation(a.logger, kind+".collect")

	var items []Item
	for _, cluster := range targets {
		clog := logging.WithCluster(log, cluster.Name)
		got, err := fetch(ctx, cluster)
		if err != nil {
			a.metrics.RecordClusterFetch(ctx, kind, instrumentation.StatusError)
			instrumentation.SetSpanError(span, err)
			return nil, fmt.Errorf("cluster %s: %w", cluster.Name, err)
		}
		if len(got) == 0 {
			a.metrics.RecordClusterFetch(ctx, kind, instrumentation.StatusEmpty)
			clog.Warn(fmt.Sprintf("no %s found for cluster", kind))
			continue
		}
		a.metrics.RecordClusterFetch(ctx, kind, instrumentation.StatusSuccess)

		kept := filterNames(got, opts.Names)
		if len(kept) == 0 {
			clog.Info(fmt.Sprintf("no matching %s found for cluster", kind))
			continue
		}

		for i, rec := range kept {
			items = append(items, Item{
				Cluster: cluster.Name,
				Index:   i,
				Record:  projection.Apply(rec, opts.Fields),
			})
		}
	}

	log.Debug("collection finished", logging.Items(len(items)))
	instrumentation.SetSpanSuccess(span)
	return items, nil
}

// targets resolves the selector to the clusters to fetch from. Both paths
// cost exactly one cluster listing.
func (a *Aggregator) targets(ctx context.Context, selector string, single bool) ([]resolver.ClusterRef, error) {
	clusters, err := a.clusters.Clusters(ctx)
	if err != nil {
		return nil, err
	}
	if selector == "" && !single {
		if len(clusters) == 0 {
			return nil, &resolver.NotFoundError{}
		}
		return clusters, nil
	}
	ref, err := resolver.Resolve(selector, clusters)
	if err != nil {
		return nil, err
	}
	return []resolver.ClusterRef{ref}, nil
}

func filterNames(recs []record.Value, names sets.Set[string]) []record.Value {
	if names.Len() == 0 {
		return recs
	}
	kept := make([]record.Value, 0, len(recs))
	for _, rec := range recs {
		if names.Has(rec.StringField("name")) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// Names returns the "name" value of each item, keeping cluster and index.
// Items without a name map to Missing.
func Names(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		name, ok := it.Record.Get("name")
		if !ok {
			name = record.Missing()
		}
		out[i] = Item{Cluster: it.Cluster, Index: it.Index, Record: name}
	}
	return out
}
