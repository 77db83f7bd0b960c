package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/projection"
	"github.com/giantswarm/mmaictl/internal/render"
	"github.com/giantswarm/mmaictl/internal/resource"
)

// newClusterCmd builds the cluster group. Clusters are addressed by uid in
// the API; commands accept a name or uid and resolve it first.
func newClusterCmd(a *app) *cobra.Command {
	kind := resource.Cluster
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: "Manage " + plural(kind),
	}
	cmd.AddCommand(
		newAddCmd(a, kind),
		newClusterListCmd(a),
		newShowCmd(a, kind, "get", a.clusterUID),
		newUpdateCmd(a, kind, a.clusterUID),
		newDeleteCmd(a, kind, a.clusterUID),
	)
	return cmd
}

// clusterUID resolves a cluster name or uid to its uid.
func (a *app) clusterUID(ctx context.Context, identifier string) (string, error) {
	ref, err := a.service.ResolveCluster(ctx, identifier)
	if err != nil {
		return "", err
	}
	return ref.UID, nil
}

func newClusterListCmd(a *app) *cobra.Command {
	var (
		filter string
		out    outputFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			fields, err := parseFields(filter)
			if err != nil {
				return err
			}
			clusters, err := a.service.ListClusters(cmd.Context())
			if err != nil {
				return err
			}
			if len(fields) > 0 {
				clusters = projection.ProjectAll(clusters, fields)
			}
			return render.Write(cmd.OutOrStdout(), render.List(resource.Cluster.Name, clusters), opts)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "comma-separated dot paths to keep, e.g. name,uid")
	out.register(cmd)
	return cmd
}
