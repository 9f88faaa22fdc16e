package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stackui/internal/config"
	"stackui/internal/input"
	"stackui/internal/logging"
	"stackui/internal/platform"
	"stackui/internal/render"
	"stackui/internal/trace"
	"stackui/internal/ui"
	"stackui/internal/view"
)

var version = "0.1.0"

const defaultScript = "down,a,none*40,right*2,down,none*4,b,none*40,down,a,none*30,b,none*30"

var rootCmd = &cobra.Command{
	Use:   "stackui",
	Short: "Stack-based terminal UI runtime demo",
	Long: `stackui runs a small demo application on the view-stack runtime: a menu,
a settings page and a dialog, with animated push/pop transitions, directional
focus navigation and held-button repeat.

Without --headless it runs in the terminal. With --headless it replays a
scripted button sequence and prints the final view stack.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	defaults := config.Default()
	defaults.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().String("config", "", "path to a YAML config file")
	rootCmd.Flags().String("script", defaultScript, "button script replayed in headless mode")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.Environ()); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Logging.File != "" {
		if err := logging.Configure(cfg.Logging.File); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logging.Close()
	}
	logging.SetLevel(cfg.LogLevel())
	logging.SetTraceEnabled(cfg.Logging.Trace)
	logging.Trace("config", cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tp, err := trace.Setup(ctx, cfg.Logging.Trace, os.Getenv)
	if err != nil {
		return err
	}
	defer tp.Shutdown(context.Background())

	keys := input.DefaultKeyMap()
	screen := render.NewTerminal(keys)
	opts := ui.Options{
		Renderer:      screen,
		Tracer:        tp.Tracer(),
		Theme:         render.ThemeFor(cfg.ThemeVariant()),
		Width:         cfg.Width,
		Height:        cfg.Height,
		RepeatDelay:   cfg.RepeatDelay,
		RepeatCadence: cfg.RepeatCadence,
		QuitButton:    cfg.Quit(),
	}

	if cfg.Headless {
		script, _ := cmd.Flags().GetString("script")
		return runHeadless(ctx, cmd, opts, cfg, script)
	}
	return runInteractive(opts, cfg, keys, screen)
}

func runInteractive(opts ui.Options, cfg config.Config, keys *input.KeyMap, screen *render.Terminal) error {
	term := platform.NewTerminal(keys, platform.DefaultHoldTicks)
	opts.Platform = term
	// The bubbletea tick cadence paces frames.
	opts.MaxFPS = 0
	opts.Width, opts.Height = 80, 24

	app := ui.New(opts)
	newDemo(app).start()

	p := tea.NewProgram(ui.NewModel(app, term, screen, cfg.MaxFPS), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	app.Exit()
	return nil
}

func runHeadless(ctx context.Context, cmd *cobra.Command, opts ui.Options, cfg config.Config, script string) error {
	src, err := platform.ParseScript(script)
	if err != nil {
		return err
	}
	opts.Platform = src
	opts.MaxFPS = cfg.MaxFPS

	app := ui.New(opts)
	newDemo(app).start()

	var names []string
	app.FocusChanged().Subscribe(func(*view.Node) {
		logging.Debugf("Stack: %s", describeStack(app))
	})
	// The stack is torn down on exit, so keep the last frame's view names.
	app.Tasks().Every(0, func() {
		names = stackNames(app)
	})

	if err := app.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frames: %d\nstack: %s\n", app.Frame(), strings.Join(names, " > "))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
