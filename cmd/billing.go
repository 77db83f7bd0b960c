package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/render"
	"github.com/giantswarm/mmaictl/internal/resource"
)

func newBillingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   resource.Billing.Name,
		Short: "Show billing details",
	}
	cmd.AddCommand(newBillingListCmd(a))
	return cmd
}

// newBillingListCmd lists the billing entries of one cluster. Without
// --cluster the only cluster is used. Entries print as billing[i].
func newBillingListCmd(a *app) *cobra.Command {
	var (
		sel = selection{single: true}
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List billing details for the departments of a cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			items, err := a.collect(cmd.Context(), resource.Billing, sel)
			if err != nil {
				return err
			}
			recs := make([]record.Value, len(items))
			for i, it := range items {
				recs[i] = it.Record
			}
			return render.Write(cmd.OutOrStdout(), render.List(resource.Billing.Name, recs), opts)
		},
	}
	cmd.Flags().StringVar(&sel.cluster, "cluster", "", "cluster name or uid (default: the only cluster)")
	cmd.Flags().StringVar(&sel.filter, "filter", "", "comma-separated dot paths to keep, e.g. department,amount")
	out.register(cmd)
	return cmd
}
