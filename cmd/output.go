package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/render"
)

// outputFlags are shared by every command that renders records.
type outputFlags struct {
	format string
	jq     string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "output", "o", "", "output format: "+strings.Join(render.Modes(), "|")+" (default text)")
	cmd.Flags().StringVar(&o.jq, "jq", "", "jq expression applied to the JSON output")
}

// options resolves the flags against the configured default format.
func (o *outputFlags) options(a *app) (render.Options, error) {
	format := o.format
	if format == "" && a.cfg != nil {
		format = a.cfg.Output
	}
	mode, err := render.ParseMode(format)
	if err != nil {
		return render.Options{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return render.Options{Mode: mode, JQ: o.jq}, nil
}
