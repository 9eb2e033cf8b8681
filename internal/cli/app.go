package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/config"
	"github.com/zapponejosh/devotion/internal/content"
	"github.com/zapponejosh/devotion/internal/database"
	"github.com/zapponejosh/devotion/internal/logger"
	"github.com/zapponejosh/devotion/internal/readingplan"
	"github.com/zapponejosh/devotion/internal/render"
)

// options holds command line flags.
type options struct {
	date    string
	hour    int
	hourSet bool
	format  string
	seed    uint64
	content string
	debug   bool
}

// app carries what every command needs once flags are parsed.
type app struct {
	now  func() time.Time
	opts options
	cfg  *config.Config
	log  *slog.Logger
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	a.opts.hourSet = flags.Changed("hour")
	if flags.Changed("format") {
		cfg.OutputFormat = a.opts.format
	}
	if flags.Changed("seed") {
		cfg.Seed = a.opts.seed
	}
	if flags.Changed("content") {
		cfg.ContentFile = a.opts.content
	}
	if a.opts.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logger.Setup(cfg, cmd.ErrOrStderr())
	a.log.Debug("configuration loaded",
		slog.String("output_format", cfg.OutputFormat),
		slog.String("reading_plan", cfg.ReadingPlan),
	)
	return nil
}

// today returns the reference moment: --date and --hour override the clock.
func (a *app) today() (time.Time, error) {
	now := a.now()

	hour := now.Hour()
	if a.opts.hourSet {
		if a.opts.hour < 0 || a.opts.hour > 23 {
			return time.Time{}, fmt.Errorf("--hour must be between 0 and 23, got %d", a.opts.hour)
		}
		hour = a.opts.hour
	}

	y, m, d := now.Date()
	if a.opts.date != "" {
		parsed, err := calendar.ParseDateString(a.opts.date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q, use YYYY-MM-DD", a.opts.date)
		}
		y, m, d = parsed.Date()
	}

	return time.Date(y, m, d, hour, now.Minute(), 0, 0, now.Location()), nil
}

// content returns the built-in texts or the configured overrides.
func (a *app) content() (content.Content, error) {
	if a.cfg.ContentFile == "" {
		return content.Default(), nil
	}
	c, err := content.LoadFile(a.cfg.ContentFile)
	if err != nil {
		return content.Content{}, fmt.Errorf("load %s: %w", a.cfg.ContentFile, err)
	}
	return c, nil
}

// renderer picks the renderer for the configured output format.
func (a *app) renderer(c content.Content) render.Renderer {
	if a.cfg.OutputFormat == config.FormatJSON {
		return render.JSON{}
	}
	return render.NewText(c)
}

// plan opens the configured reading plan. The returned close function is
// never nil.
func (a *app) plan(ctx context.Context) (readingplan.Plan, func() error, error) {
	noop := func() error { return nil }
	if !a.cfg.UsesSQLite() {
		return readingplan.Builtin(), noop, nil
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return nil, noop, err
	}
	store, err := database.PreparePlan(ctx, db)
	if err != nil {
		db.Close()
		return nil, noop, fmt.Errorf("prepare reading plan: %w", err)
	}
	return store, db.Close, nil
}

func (a *app) openDB(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(a.cfg.DatabasePath), a.log)
	if err != nil {
		return nil, fmt.Errorf("open reading plan database: %w", err)
	}
	if err := db.Health(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// closeWith runs closer and keeps the first error.
func closeWith(err *error, closer func() error) {
	if cerr := closer(); cerr != nil && *err == nil {
		*err = cerr
	}
}

var errMemoryPlan = errors.New("DATABASE_PATH is in-memory; set it to a file to keep a seeded plan")
