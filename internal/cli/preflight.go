package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/hamed0406/uptimeping/internal/config"
	"github.com/hamed0406/uptimeping/internal/domain"
)

func newPreflightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Validate configuration without probing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.out
			fail := func(msg string) { fmt.Fprintln(w, "✖", msg) }
			warn := func(msg string) { fmt.Fprintln(w, "⚠", msg) }
			ok := func(msg string) { fmt.Fprintln(w, "✔", msg) }

			counts := map[domain.Kind]int{}
			for _, t := range a.cfg.Targets {
				counts[t.Kind]++
			}
			if len(a.cfg.Targets) == 0 {
				warn("no targets configured; a run will only ping the heartbeat")
			} else {
				ok(fmt.Sprintf("%d targets (http=%d command=%d tcp=%d)",
					len(a.cfg.Targets), counts[domain.KindHTTP], counts[domain.KindCommand], counts[domain.KindTCP]))
			}
			if a.cfg.CommandTimeout == 0 && counts[domain.KindCommand] > 0 {
				warn("PROBE_COMMAND_TIMEOUT_MS=0; a hanging command blocks the whole run")
			}
			for _, t := range a.cfg.Targets {
				if strings.TrimSpace(t.Endpoint) != t.Endpoint {
					warn(fmt.Sprintf("target %q endpoint has surrounding whitespace", t.Name))
				}
			}

			errs := multierr.Errors(config.Validate(a.cfg))
			for _, err := range errs {
				fail(err.Error())
			}
			if len(errs) > 0 {
				return &exitError{code: 1}
			}
			ok("preflight passed")
			return nil
		},
	}
}
