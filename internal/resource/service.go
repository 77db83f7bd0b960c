// Package resource provides table-driven access to the control plane's
// resource kinds on top of the generic API client.
package resource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/giantswarm/mmaictl/internal/api"
	"github.com/giantswarm/mmaictl/internal/logging"
	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/resolver"
)

// Client is the subset of *api.Client the service uses.
type Client interface {
	Get(ctx context.Context, path string) (record.Value, error)
	Post(ctx context.Context, path string, body record.Value) (record.Value, error)
	Put(ctx context.Context, path string, body record.Value) (record.Value, error)
	Delete(ctx context.Context, path string) error
}

// Service performs CRUD operations for any Kind.
type Service struct {
	client Client
	logger *slog.Logger
}

// NewService returns a Service using client.
func NewService(client Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{client: client, logger: logger}
}

// Clusters lists every cluster reference.
func (s *Service) Clusters(ctx context.Context) ([]resolver.ClusterRef, error) {
	return resolver.List(ctx, s.client)
}

// ResolveCluster maps a name or uid, or nothing, to one cluster.
func (s *Service) ResolveCluster(ctx context.Context, identifier string) (resolver.ClusterRef, error) {
	return resolver.Lookup(ctx, s.client, identifier)
}

// ListClusters returns the full cluster records.
func (s *Service) ListClusters(ctx context.Context) ([]record.Value, error) {
	v, err := s.client.Get(ctx, resolver.ClustersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	return asList(v, resolver.ClustersPath)
}

// ListScoped fetches kind's collection for one cluster uid.
func (s *Service) ListScoped(ctx context.Context, kind Kind, clusterUID string) ([]record.Value, error) {
	if !kind.Scoped() {
		return nil, fmt.Errorf("%s is not listed per cluster", kind.Name)
	}
	path := api.Path("clusters", clusterUID, kind.Collection)
	v, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind.Collection, err)
	}
	items, err := asList(v, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("fetched collection", logging.Kind(kind.Name), logging.Cluster(clusterUID), logging.Items(len(items)))
	return items, nil
}

// ListProjectWorkloads fetches the workloads of one project in one cluster.
func (s *Service) ListProjectWorkloads(ctx context.Context, clusterUID, project string) ([]record.Value, error) {
	path := api.Path("clusters", clusterUID, "projects", project, "workloads")
	v, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to list workloads of project %q: %w", project, err)
	}
	return asList(v, path)
}

// Create posts body to kind's endpoint.
func (s *Service) Create(ctx context.Context, kind Kind, body record.Value) (record.Value, error) {
	if err := requireEndpoint(kind); err != nil {
		return record.Missing(), err
	}
	v, err := s.client.Post(ctx, kind.Endpoint, body)
	if err != nil {
		return record.Missing(), fmt.Errorf("failed to create %s: %w", kind.Name, err)
	}
	return v, nil
}

// Show fetches one instance of kind by name (uid for clusters).
func (s *Service) Show(ctx context.Context, kind Kind, id string) (record.Value, error) {
	if err := requireEndpoint(kind); err != nil {
		return record.Missing(), err
	}
	v, err := s.client.Get(ctx, api.Path(kind.Endpoint, id))
	if err != nil {
		return record.Missing(), fmt.Errorf("failed to get %s %q: %w", kind.Name, id, err)
	}
	return v, nil
}

// Update puts body to one instance of kind.
func (s *Service) Update(ctx context.Context, kind Kind, id string, body record.Value) (record.Value, error) {
	if err := requireEndpoint(kind); err != nil {
		return record.Missing(), err
	}
	v, err := s.client.Put(ctx, api.Path(kind.Endpoint, id), body)
	if err != nil {
		return record.Missing(), fmt.Errorf("failed to update %s %q: %w", kind.Name, id, err)
	}
	return v, nil
}

// Delete removes one instance of kind.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if err := requireEndpoint(kind); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, api.Path(kind.Endpoint, id)); err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", kind.Name, id, err)
	}
	return nil
}

// WorkloadAction is a state transition applied to a workload.
type WorkloadAction string

// Supported workload transitions.
const (
	Resume  WorkloadAction = "resume"
	Suspend WorkloadAction = "suspend"
)

// TransitionWorkload resumes or suspends a workload of project.
func (s *Service) TransitionWorkload(ctx context.Context, project, name string, action WorkloadAction) (record.Value, error) {
	path := api.Path("projects", project, "workloads", name, string(action))
	v, err := s.client.Put(ctx, path, record.Missing())
	if err != nil {
		return record.Missing(), fmt.Errorf("failed to %s workload %q: %w", action, name, err)
	}
	return v, nil
}

func requireEndpoint(kind Kind) error {
	if !kind.Addressable() {
		return fmt.Errorf("%s cannot be addressed by name", kind.Name)
	}
	return nil
}

// asList unwraps a collection response. A null or empty body is an empty
// collection.
func asList(v record.Value, path string) ([]record.Value, error) {
	switch v.Kind() {
	case record.KindList:
		return v.Items(), nil
	case record.KindNull, record.KindMissing:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected response from %s: expected a list, got %s", path, v.Kind())
	}
}
