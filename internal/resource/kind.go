package resource

// Kind describes one resource type of the control plane and where it lives
// in the REST API.
type Kind struct {
	// Name is the CLI noun and the flattened-prefix segment, e.g. "nodegroup".
	Name string

	// Title is the human-readable singular used in messages, e.g. "Node group".
	Title string

	// Collection is the path segment under clusters/{uid}, e.g. "nodeGroups".
	// Empty when the kind is not listed per cluster.
	Collection string

	// Endpoint is the top-level path segment for create, show, update and
	// delete, e.g. "nodegroups". Empty when the kind has no such endpoint.
	Endpoint string
}

// Scoped reports whether the kind is listed per cluster.
func (k Kind) Scoped() bool { return k.Collection != "" }

// Addressable reports whether instances can be created, shown, updated and
// deleted through a top-level endpoint.
func (k Kind) Addressable() bool { return k.Endpoint != "" }

// The resource kinds known to the control plane.
var (
	Cluster = Kind{
		Name:     "cluster",
		Title:    "Cluster",
		Endpoint: "clusters",
	}
	Department = Kind{
		Name:       "department",
		Title:      "Department",
		Collection: "departments",
		Endpoint:   "departments",
	}
	NodeGroup = Kind{
		Name:       "nodegroup",
		Title:      "Node group",
		Collection: "nodeGroups",
		Endpoint:   "nodegroups",
	}
	Node = Kind{
		Name:       "node",
		Title:      "Node",
		Collection: "nodes",
	}
	Project = Kind{
		Name:       "project",
		Title:      "Project",
		Collection: "projects",
		Endpoint:   "projects",
	}
	Workload = Kind{
		Name:       "workload",
		Title:      "Workload",
		Collection: "workloads",
	}
	Billing = Kind{
		Name:       "billing",
		Title:      "Billing",
		Collection: "billing",
	}
)

// Kinds lists every kind in CLI order.
var Kinds = []Kind{Cluster, Department, NodeGroup, Node, Project, Workload, Billing}

// Aggregated lists the kinds whose list and get commands fan out over clusters.
var Aggregated = []Kind{Department, NodeGroup, Node, Project, Workload}

// ByName returns the kind with the given CLI noun.
func ByName(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}
