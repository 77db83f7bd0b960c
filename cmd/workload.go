package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/resource"
)

func newWorkloadCmd(a *app) *cobra.Command {
	kind := resource.Workload
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: "Manage " + plural(kind),
	}
	cmd.AddCommand(
		newListCmd(a, kind),
		newGetCmd(a, kind),
		newWorkloadTransitionCmd(a, resource.Resume, "Resume a suspended workload", "resumed"),
		newWorkloadTransitionCmd(a, resource.Suspend, "Suspend a running workload", "suspended"),
	)
	return cmd
}

func newWorkloadTransitionCmd(a *app, action resource.WorkloadAction, short, done string) *cobra.Command {
	var (
		project, name string
		out           outputFlags
	)
	cmd := &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			result, err := a.service.TransitionWorkload(cmd.Context(), project, name, action)
			if err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("Workload %q %s in project %q", name, done, project))
			return writeResult(cmd, resource.Workload, result, opts)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "project of the workload")
	cmd.Flags().StringVar(&name, "name", "", "workload name")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	out.register(cmd)
	return cmd
}
