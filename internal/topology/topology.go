// Package topology assembles the platform's hardware and organisational
// layout, clusters down to nodes and workloads, and prints it as a tree.
package topology

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/giantswarm/mmaictl/internal/api"
	"github.com/giantswarm/mmaictl/internal/instrumentation"
	"github.com/giantswarm/mmaictl/internal/logging"
	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/resolver"
)

// NoGPUs is shown for nodes that report no gpus field.
const NoGPUs = "None"

// Getter fetches one API path.
type Getter interface {
	Get(ctx context.Context, path string) (record.Value, error)
}

// Topology is the full platform layout.
type Topology struct {
	Clusters []Cluster
}

// Cluster holds a cluster's hardware and organisational branches.
type Cluster struct {
	Name        string
	NodeGroups  []NodeGroup
	Departments []Department
}

// NodeGroup is a named set of nodes.
type NodeGroup struct {
	Name  string
	Nodes []Node
}

// Node summarises one machine. All fields are display strings.
type Node struct {
	Name    string
	CPU     string
	Memory  string
	Network string
	Storage string
	GPUs    string
}

// Department owns projects.
type Department struct {
	Name     string
	Projects []Project
}

// Project owns workloads, listed by name.
type Project struct {
	Name      string
	Workloads []string
}

// Builder walks the API to assemble a Topology.
type Builder struct {
	client Getter
	logger *slog.Logger
}

// NewBuilder returns a Builder.
func NewBuilder(client Getter, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Builder{client: client, logger: logger}
}

// Build fetches every level sequentially. The first failing request aborts
// the build.
func (b *Builder) Build(ctx context.Context) (*Topology, error) {
	ctx, span := instrumentation.StartSpan(ctx, "topology.build")
	defer span.End()
	b.logger.Debug("building topology", slog.String("trace_id", instrumentation.GetTraceID(ctx)))

	clusters, err := b.list(ctx, api.Path(resolver.ClustersPath))
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, err
	}
	if len(clusters) == 0 {
		err := &resolver.NotFoundError{}
		instrumentation.SetSpanError(span, err)
		return nil, err
	}

	topo := &Topology{}
	for _, c := range clusters {
		cluster, err := b.cluster(ctx, c)
		if err != nil {
			instrumentation.SetSpanError(span, err)
			return nil, err
		}
		topo.Clusters = append(topo.Clusters, cluster)
	}
	span.SetAttributes(attribute.Int(instrumentation.SpanAttrItems, len(topo.Clusters)))
	instrumentation.SetSpanSuccess(span)
	return topo, nil
}

func (b *Builder) cluster(ctx context.Context, rec record.Value) (Cluster, error) {
	uid := rec.StringField("uid")
	out := Cluster{Name: rec.StringField("name")}
	b.logger.Debug("building cluster topology", logging.Cluster(out.Name))

	groups, err := b.list(ctx, api.Path("clusters", uid, "nodeGroups"))
	if err != nil {
		return Cluster{}, err
	}
	for _, g := range groups {
		nodes, err := b.list(ctx, api.Path("nodegroups", g.StringField("uid"), "nodes"))
		if err != nil {
			return Cluster{}, err
		}
		group := NodeGroup{Name: g.StringField("name")}
		for _, n := range nodes {
			group.Nodes = append(group.Nodes, nodeSummary(n))
		}
		out.NodeGroups = append(out.NodeGroups, group)
	}

	departments, err := b.list(ctx, api.Path("clusters", uid, "departments"))
	if err != nil {
		return Cluster{}, err
	}
	for _, d := range departments {
		projects, err := b.list(ctx, api.Path("departments", d.StringField("uid"), "projects"))
		if err != nil {
			return Cluster{}, err
		}
		dept := Department{Name: d.StringField("name")}
		for _, p := range projects {
			workloads, err := b.list(ctx, api.Path("projects", p.StringField("uid"), "workloads"))
			if err != nil {
				return Cluster{}, err
			}
			project := Project{Name: p.StringField("name")}
			for _, w := range workloads {
				project.Workloads = append(project.Workloads, w.StringField("name"))
			}
			dept.Projects = append(dept.Projects, project)
		}
		out.Departments = append(out.Departments, dept)
	}
	return out, nil
}

func (b *Builder) list(ctx context.Context, path string) ([]record.Value, error) {
	v, err := b.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	switch v.Kind() {
	case record.KindList:
		return v.Items(), nil
	case record.KindNull, record.KindMissing:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected response from %s: expected a list, got %s", path, v.Kind())
	}
}

func nodeSummary(n record.Value) Node {
	cores, _ := n.Lookup([]string{"cpu", "cores"})
	memory, _ := n.Lookup([]string{"memory", "total"})
	network, _ := n.Get("network")
	storage, _ := n.Get("storage")
	gpus := NoGPUs
	if v, ok := n.Get("gpus"); ok {
		gpus = v.Display()
	}
	return Node{
		Name:    n.StringField("name"),
		CPU:     quantity(cores, "cores"),
		Memory:  quantity(memory, "GB"),
		Network: network.Display(),
		Storage: storage.Display(),
		GPUs:    gpus,
	}
}

var numbers = message.NewPrinter(language.English)

// quantity prints integers with thousands separators and anything else as
// sent, followed by unit.
func quantity(v record.Value, unit string) string {
	if n, ok := v.Interface().(int); ok {
		return numbers.Sprintf("%d %s", n, unit)
	}
	return v.Display() + " " + unit
}
