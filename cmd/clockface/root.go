package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"clockface/internal/config"
	"clockface/internal/engine2D"
	"clockface/internal/utils"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	v          *viper.Viper
	configPath string
	verbose    bool
	quiet      bool

	cfg      *config.Config
	theme    engine2D.Theme
	renderer *engine2D.Renderer
	clock    clockwork.Clock
}

func newRootCmd() *cobra.Command {
	return newApp(clockwork.NewRealClock()).command()
}

func newApp(clock clockwork.Clock) *app {
	return &app{v: config.New(), clock: clock}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clockface",
		Short: "Analog clock face rendered in real time",
		Long: `clockface draws an analog clock with hour, minute and second hands and
advances it once per second from the current time of day.

Without a subcommand it opens a window. Use "term" for a terminal clock,
"snapshot" for a PNG of a single frame and "record" for a frame archive.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWindow(cmd.Context())
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/clockface/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	flags.String("theme", "dark", "color theme (dark|light)")
	flags.String("background", "", "background color override (#RRGGBB)")
	flags.String("foreground", "", "foreground color override (#RRGGBB)")
	flags.Float64("density", 1, "pixels per density-independent unit")
	flags.Duration("resync", 0, "reload the time from the system clock this often (0 keeps ticking freely)")
	flags.String("log-file", "", "also write logs to this file, rotated by size")
	flags.Int("width", 720, "surface width in pixels")
	flags.Int("height", 1280, "surface height in pixels")
	flags.Bool("fullscreen", false, "cover the whole X11 display")
	flags.Int("fps", 60, "target frames per second")
	flags.Bool("debug-overlay", false, "show angles, geometry and FPS (toggle with F8)")

	a.bind(flags, map[string]string{
		"theme.name":           "theme",
		"theme.background":     "background",
		"theme.foreground":     "foreground",
		"render.density":       "density",
		"clock.resync":         "resync",
		"log.file":             "log-file",
		"window.width":         "width",
		"window.height":        "height",
		"window.fullscreen":    "fullscreen",
		"window.fps":           "fps",
		"window.debug_overlay": "debug-overlay",
	})

	cmd.AddCommand(
		a.newWindowCmd(),
		a.newSnapshotCmd(),
		a.newRecordCmd(),
		a.newTermCmd(),
	)
	return cmd
}

// bind ties config keys to flags so flags win over env, file and defaults.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		utils.Error("Failed to load configuration: %v", err)
		return err
	}

	level := cfg.LogLevel()
	switch {
	case a.verbose:
		level = utils.LevelDebug
	case a.quiet:
		level = utils.LevelWarn
	}
	if err := utils.InitLogger(utils.LogOptions{Level: level, File: cfg.Log.File}); err != nil {
		return err
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.theme = theme
	a.renderer = engine2D.NewRenderer(theme, cfg.Render.Density)
	utils.Debug("Command %s: theme=%s density=%g size=%dx%d", cmd.Name(), theme.Name, cfg.Render.Density, cfg.Window.Width, cfg.Window.Height)
	return nil
}

// initialState parses --at, falling back to the current time.
func (a *app) initialState(at string) (engine2D.ClockState, error) {
	if at == "" {
		return engine2D.ClockStateFromTime(a.clock.Now()), nil
	}
	return engine2D.ParseClockState(at)
}

func (a *app) newTicker(initial engine2D.ClockState, opts ...engine2D.TickerOption) *engine2D.Ticker {
	opts = append([]engine2D.TickerOption{
		engine2D.WithInterval(a.cfg.Clock.Interval),
		engine2D.WithResync(a.cfg.Clock.Resync),
	}, opts...)
	return engine2D.NewTicker(a.clock, initial, opts...)
}
