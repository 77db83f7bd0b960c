package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/giantswarm/mmaictl/internal/aggregate"
	"github.com/giantswarm/mmaictl/internal/record"
	"github.com/giantswarm/mmaictl/internal/render"
	"github.com/giantswarm/mmaictl/internal/resolver"
	"github.com/giantswarm/mmaictl/internal/resource"
)

// noun is the lower-case singular used in help text, e.g. "node group".
func noun(kind resource.Kind) string {
	return strings.ToLower(kind.Title)
}

// plural is the lower-case plural used in help text, e.g. "node groups".
func plural(kind resource.Kind) string {
	return noun(kind) + "s"
}

// targetFunc maps a command argument to the identifier used in the API path.
type targetFunc func(ctx context.Context, arg string) (string, error)

// byName uses the argument as-is.
func byName(_ context.Context, arg string) (string, error) { return arg, nil }

// newKindCmd generates the command group for a kind from its table entry:
// list and get for kinds listed per cluster, add, show, update and delete for
// kinds with a top-level endpoint.
func newKindCmd(a *app, kind resource.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: "Manage " + plural(kind),
	}
	if kind.Scoped() {
		cmd.AddCommand(newListCmd(a, kind), newGetCmd(a, kind))
	}
	if kind.Addressable() {
		cmd.AddCommand(
			newAddCmd(a, kind),
			newShowCmd(a, kind, "show", byName),
			newUpdateCmd(a, kind, byName),
			newDeleteCmd(a, kind, byName),
		)
	}
	return cmd
}

// selection is the per-invocation scope of an aggregated list or get.
type selection struct {
	cluster string
	project string
	single  bool
	names   []string
	filter  string
}

func (s *selection) register(cmd *cobra.Command, kind resource.Kind) {
	cmd.Flags().StringVar(&s.cluster, "cluster", "", "cluster name or uid (default: all clusters)")
	if kind.Name == resource.Workload.Name {
		cmd.Flags().StringVar(&s.project, "project", "", "only workloads of this project; requires a single cluster")
	}
}

// collect runs the aggregator for kind within s.
func (a *app) collect(ctx context.Context, kind resource.Kind, s selection) ([]aggregate.Item, error) {
	fields, err := parseFields(s.filter)
	if err != nil {
		return nil, err
	}
	opts := aggregate.Options{
		Selector: s.cluster,
		Single:   s.single,
		Fields:   fields,
	}
	if len(s.names) > 0 {
		opts.Names = sets.New(s.names...)
	}

	fetch := func(ctx context.Context, c resolver.ClusterRef) ([]record.Value, error) {
		return a.service.ListScoped(ctx, kind, c.UID)
	}
	if s.project != "" {
		opts.Single = true
		fetch = func(ctx context.Context, c resolver.ClusterRef) ([]record.Value, error) {
			return a.service.ListProjectWorkloads(ctx, c.UID, s.project)
		}
	}

	return a.aggregator.Collect(ctx, kind.Name, fetch, opts)
}

func newListCmd(a *app, kind resource.Kind) *cobra.Command {
	var (
		sel selection
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s names per cluster", noun(kind)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			items, err := a.collect(cmd.Context(), kind, sel)
			if err != nil {
				return err
			}
			if len(items) == 0 && opts.JQ == "" && opts.Mode == render.ModeText {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No %s found.\n", plural(kind))
				return err
			}
			return render.Write(cmd.OutOrStdout(), render.GroupedNames(kind.Name, items), opts)
		},
	}
	sel.register(cmd, kind)
	out.register(cmd)
	return cmd
}

func newGetCmd(a *app, kind resource.Kind) *cobra.Command {
	var (
		sel selection
		out outputFlags
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: fmt.Sprintf("Get all %s properties per cluster", noun(kind)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			items, err := a.collect(cmd.Context(), kind, sel)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), render.Grouped(kind.Name, items), opts)
		},
	}
	sel.register(cmd, kind)
	cmd.Flags().StringSliceVarP(&sel.names, "name", "n", nil, fmt.Sprintf("only %s with this name (repeatable)", plural(kind)))
	cmd.Flags().StringVar(&sel.filter, "filter", "", "comma-separated dot paths to keep, e.g. name,quota.gpus")
	out.register(cmd)
	return cmd
}

func newAddCmd(a *app, kind resource.Kind) *cobra.Command {
	var (
		name, description string
		out               outputFlags
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new " + noun(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			created, err := a.service.Create(cmd.Context(), kind, resource.CreateBody(name, description))
			if err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("%s %q added successfully", kind.Title, name))
			return writeResult(cmd, kind, created, opts)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name of the "+noun(kind))
	cmd.Flags().StringVar(&description, "description", "", "description of the "+noun(kind))
	_ = cmd.MarkFlagRequired("name")
	out.register(cmd)
	return cmd
}

func newShowCmd(a *app, kind resource.Kind, use string, target targetFunc) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   use + " <" + argName(kind) + ">",
		Short: "Show one " + noun(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			id, err := target(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rec, err := a.service.Show(cmd.Context(), kind, id)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), render.Single(kind.Name, rec), opts)
		},
	}
	out.register(cmd)
	return cmd
}

func newUpdateCmd(a *app, kind resource.Kind, target targetFunc) *cobra.Command {
	var (
		newName, description string
		props                []string
		out                  outputFlags
	)
	cmd := &cobra.Command{
		Use:   "update <" + argName(kind) + ">",
		Short: "Update a " + noun(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := out.options(a)
			if err != nil {
				return err
			}
			parsed, err := parseProperties(props)
			if err != nil {
				return err
			}
			body, ok := resource.UpdateBody(newName, description, parsed)
			if !ok {
				return malformed("no updates provided, use --new-name, --description or --set")
			}
			id, err := target(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			updated, err := a.service.Update(cmd.Context(), kind, id, body)
			if err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("%s %q updated successfully", kind.Title, args[0]))
			return writeResult(cmd, kind, updated, opts)
		},
	}
	cmd.Flags().StringVar(&newName, "new-name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringArrayVar(&props, "set", nil, "property to set as key=value; JSON values keep their type (repeatable)")
	out.register(cmd)
	return cmd
}

func newDeleteCmd(a *app, kind resource.Kind, target targetFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <" + argName(kind) + ">",
		Short: "Delete a " + noun(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := target(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.service.Delete(cmd.Context(), kind, id); err != nil {
				return err
			}
			a.logger.Info(fmt.Sprintf("%s %q deleted successfully", kind.Title, args[0]))
			return nil
		},
	}
}

func argName(kind resource.Kind) string {
	if kind.Name == resource.Cluster.Name {
		return "name|uid"
	}
	return "name"
}

// writeResult renders the server's reply to a mutation. Empty replies print
// nothing.
func writeResult(cmd *cobra.Command, kind resource.Kind, v record.Value, opts render.Options) error {
	if v.Kind() == record.KindNull || v.IsMissing() {
		return nil
	}
	return render.Write(cmd.OutOrStdout(), render.Single(kind.Name, v), opts)
}
