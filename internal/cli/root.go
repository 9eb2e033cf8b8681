// Package cli wires configuration, the calendar and the devotion builder
// into the devotion command line.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Execute runs the command line and exits 1 on error.
func Execute() {
	cmd := newRootCmd(time.Now)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	cmd := &cobra.Command{
		Use:          "devotion",
		Short:        "Daily devotion for the current season of the church year",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.runToday,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.date, "date", "", "date to use as today (YYYY-MM-DD); defaults to the local date")
	flags.IntVar(&a.opts.hour, "hour", 0, "hour of day 0-23 for choosing the prayer; defaults to the current hour")
	flags.StringVar(&a.opts.format, "format", "", "output format: text or json (overrides OUTPUT_FORMAT)")
	flags.BoolVar(&a.opts.debug, "debug", false, "enable debug logging on stderr")

	cmd.Flags().Uint64Var(&a.opts.seed, "seed", 0, "random seed for reproducible output (overrides DEVOTION_SEED)")
	cmd.Flags().StringVar(&a.opts.content, "content", "", "YAML file overriding the devotional texts (overrides CONTENT_FILE)")

	cmd.AddCommand(
		newTodayCmd(a),
		newSeasonCmd(a),
		newCalendarCmd(a),
		newReadingCmd(a),
		newPlanCmd(a),
	)

	return cmd
}
