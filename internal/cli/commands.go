package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/content"
	"github.com/zapponejosh/devotion/internal/database"
	"github.com/zapponejosh/devotion/internal/devotion"
	"github.com/zapponejosh/devotion/internal/logger"
	"github.com/zapponejosh/devotion/internal/readingplan"
)

func newTodayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the devotion for today",
		Args:  cobra.NoArgs,
		RunE:  a.runToday,
	}
	cmd.Flags().Uint64Var(&a.opts.seed, "seed", 0, "random seed for reproducible output (overrides DEVOTION_SEED)")
	cmd.Flags().StringVar(&a.opts.content, "content", "", "YAML file overriding the devotional texts (overrides CONTENT_FILE)")
	return cmd
}

func (a *app) runToday(cmd *cobra.Command, _ []string) (err error) {
	ctx := logger.WithAttrs(cmd.Context(), slog.String("command", cmd.Name()))

	now, err := a.today()
	if err != nil {
		return err
	}
	c, err := a.content()
	if err != nil {
		return err
	}
	plan, closePlan, err := a.plan(ctx)
	if err != nil {
		return err
	}
	defer closeWith(&err, closePlan)

	builder := devotion.NewBuilder(c, plan, devotion.NewRandomizer(a.cfg.Seed))
	d, err := builder.Build(ctx, now)
	if err != nil {
		return err
	}

	return a.renderer(c).Devotion(cmd.OutOrStdout(), d)
}

func newSeasonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "season",
		Short: "Print the liturgical season for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := a.today()
			if err != nil {
				return err
			}
			cl, err := calendar.NewClassifier(now)
			if err != nil {
				return err
			}
			return a.renderer(content.Default()).Season(cmd.OutOrStdout(), cl)
		},
	}
}

func newCalendarCmd(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List the season boundaries of a liturgical year",
		Long: `List the season boundaries of the liturgical year that begins in
Advent of --year. Without --year the year containing --date is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("year") {
				now, err := a.today()
				if err != nil {
					return err
				}
				year = calendar.LiturgicalYear(now)
			}

			y, err := calendar.NewYear(year)
			if err != nil {
				return err
			}
			a.log.Debug("calendar computed", slog.Int("year", year))
			return a.renderer(content.Default()).Calendar(cmd.OutOrStdout(), y)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "civil year in which the liturgical year begins")
	return cmd
}

func newReadingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reading",
		Short: "Print the Bible reading assigned to a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			now, err := a.today()
			if err != nil {
				return err
			}
			plan, closePlan, err := a.plan(ctx)
			if err != nil {
				return err
			}
			defer closeWith(&err, closePlan)

			day := readingplan.DayOfYear(now)
			label, err := plan.ReadingFor(ctx, day)
			if database.IsNotFound(err) {
				return fmt.Errorf("day %d is missing from %s; run `devotion plan seed` to fill it: %w",
					day, a.cfg.DatabasePath, err)
			}
			if err != nil {
				return fmt.Errorf("reading for day %d: %w", day, err)
			}
			return a.renderer(content.Default()).Reading(cmd.OutOrStdout(), now, day, label)
		},
	}
}

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the reading plan database",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the reading plan database and fill missing days from the built-in plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			if a.cfg.DatabasePath == database.MemoryPath {
				return errMemoryPlan
			}
			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer closeWith(&err, db.Close)

			if _, err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			added, err := db.SeedReadingPlan(ctx, readingplan.Builtin().Labels())
			if err != nil {
				return fmt.Errorf("seed built-in plan: %w", err)
			}
			n, err := db.CountReadings(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "reading plan at %s: %d days (%d added)\n", a.cfg.DatabasePath, n, added)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored reading plan with a YAML or JSON list of labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := logger.WithAttrs(cmd.Context(), slog.String("command", "plan import"))
			start := time.Now()

			if a.cfg.DatabasePath == database.MemoryPath {
				return errMemoryPlan
			}
			plan, err := readingplan.LoadFile(args[0])
			if err != nil {
				return err
			}

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer closeWith(&err, db.Close)

			if _, err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			n, err := db.ReplaceReadingPlan(ctx, plan.Labels())
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			logger.Info(ctx, "reading plan imported",
				slog.String("file", args[0]),
				slog.Int("days", n),
				slog.Duration("elapsed", time.Since(start)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d days into %s\n", n, a.cfg.DatabasePath)
			return nil
		},
	})

	return cmd
}
