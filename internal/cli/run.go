package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Probe every target once (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), a)
		},
	}
}

func runOnce(ctx context.Context, a *app) error {
	outcome := a.runner().RunAll(ctx, a.cfg.Targets)
	for _, r := range outcome.Results {
		if r.Healthy {
			fmt.Fprintf(a.out, "✔ %s is healthy\n", r.Target.Name)
		} else {
			fmt.Fprintf(a.out, "✖ %s: %s\n", r.Target.Name, r.Detail)
		}
	}
	if code := outcome.ExitCode(); code != 0 {
		return &exitError{code: code}
	}
	return nil
}
