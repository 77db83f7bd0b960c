package topology

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// Title heads the printed tree.
const Title = "MMAI Topology"

// Tree converts t into a printable tree.
func Tree(t *Topology) *tree.Tree {
	root := tree.Root(Title)
	for _, c := range t.Clusters {
		root.Child(clusterTree(c))
	}
	return root
}

// String renders t as an indented tree.
func String(t *Topology) string {
	return Tree(t).String()
}

func clusterTree(c Cluster) *tree.Tree {
	groups := tree.Root("Node Groups")
	for _, g := range c.NodeGroups {
		group := tree.Root("Node Group: " + g.Name)
		for _, n := range g.Nodes {
			group.Child(tree.Root("Node: "+n.Name).Child(
				"CPU: "+n.CPU,
				"Memory: "+n.Memory,
				"Network: "+n.Network,
				"Storage: "+n.Storage,
				"GPUs: "+n.GPUs,
			))
		}
		groups.Child(group)
	}

	departments := tree.Root("Departments")
	for _, d := range c.Departments {
		dept := tree.Root("Department: " + d.Name)
		for _, p := range d.Projects {
			project := tree.Root("Project: " + p.Name)
			for _, w := range p.Workloads {
				project.Child("Workload: " + w)
			}
			dept.Child(project)
		}
		departments.Child(dept)
	}

	return tree.Root("Cluster: " + c.Name).Child(groups, departments)
}
