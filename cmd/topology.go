package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/topology"
)

func newTopologyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Display the platform topology as a tree",
		Long: `Display every cluster with its node groups and nodes (CPU, memory, network,
storage, GPUs) and its departments with their projects and workloads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topo, err := topology.NewBuilder(a.client, a.logger).Build(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), topology.String(topo))
			return err
		},
	}
}
