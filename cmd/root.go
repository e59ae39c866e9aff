package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dialtimer/internal/logger"
	"dialtimer/internal/storage"
	"dialtimer/internal/ui/preferences"
	"dialtimer/internal/version"
)

const appName = "DialTimer"

// options collects the command line overrides on top of the saved settings.
type options struct {
	configPath string
	logLevel   string
	minutes    int
	scale      int
	fps        int
	headless   bool
}

var (
	flags options

	// rootCmd runs the dial timer window, or a console countdown with --headless.
	rootCmd = &cobra.Command{
		Use:   "dialtimer",
		Short: "Analog countdown timer with a draggable dial.",
		Long: `Shows a kitchen-timer style dial for countdowns of up to one hour.

Settings are read from a YAML file in the user config directory unless --config is given.
--minutes, --scale and --fps override the saved values for this run only.
With --headless no window is opened: the countdown starts at once and the remaining
time is logged every second until it finishes.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(flags)
		},
	}
)

// Execute runs the dialtimer CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to settings file")
	rootCmd.Flags().StringVarP(&flags.logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVarP(&flags.minutes, "minutes", "m", 0, "countdown length in minutes (1-60)")
	rootCmd.Flags().IntVarP(&flags.scale, "scale", "s", 0, "time scale multiplier (1-100)")
	rootCmd.Flags().IntVar(&flags.fps, "fps", 0, "frames per second for the render loop")
	rootCmd.Flags().BoolVar(&flags.headless, "headless", false, "run without a window and log the countdown")
}

func run(opts options) error {
	defer logger.Sync()

	level, ok := logger.ParseLogLevel(opts.logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", opts.logLevel)
	}
	logger.SetLevel(level)

	ctx := logger.WithName(context.Background(), "dialtimer")

	settingsPath, err := resolveSettingsPath(opts.configPath)
	if err != nil {
		return err
	}

	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		logger.WarnKV(ctx, "Using default settings", "path", settingsPath, "error", err)
		settings = preferences.DefaultSettings()
	}
	settings = applyOverrides(settings, opts)

	if opts.headless {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return runHeadless(ctx, settings, nil)
	}

	return runWindowed(ctx, settings, settingsPath)
}

func resolveSettingsPath(configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := storage.DefaultPath(appName)
	if err != nil {
		return "", fmt.Errorf("settings path: %w", err)
	}
	return path, nil
}

// applyOverrides copies non-zero flags over the settings. Values the timer
// would reject are normalized away here, before the model sees them.
func applyOverrides(settings preferences.Settings, opts options) preferences.Settings {
	if opts.minutes != 0 {
		settings.DefaultMinutes = opts.minutes
	}
	if opts.scale != 0 {
		settings.TimeScale = opts.scale
	}
	if opts.fps != 0 {
		settings.FrameRate = opts.fps
	}
	return settings.Normalize()
}
