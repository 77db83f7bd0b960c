package cmd

import (
	"errors"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the repository whose releases self-update installs.
const githubRepoSlug = "giantswarm/mmaictl"

// newSelfUpdateCmd creates the Cobra command for updating the binary in place.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update mmaictl to the latest version",
		Long: `Checks GitHub for the latest mmaictl release and replaces the running
binary with it when it is newer.`,
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := cmd.Root().Version
			if current == "" || current == "dev" {
				return errors.New("cannot self-update a development version")
			}

			release, err := selfupdate.UpdateSelf(cmd.Context(), current, selfupdate.ParseSlug(githubRepoSlug))
			if err != nil {
				return fmt.Errorf("failed to update binary: %w", err)
			}

			out := cmd.OutOrStdout()
			if release.LessOrEqual(current) {
				_, _ = fmt.Fprintf(out, "mmaictl is already at the latest version %s\n", current)
				return nil
			}
			_, _ = fmt.Fprintf(out, "Updated mmaictl to version %s\n", release.Version())
			return nil
		},
	}
}
