// Package config loads runtime settings. Sources, lowest precedence first:
// built-in defaults, a YAML file, STACKUI_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"stackui/internal/button"
	"stackui/internal/input"
	"stackui/internal/logging"
	"stackui/internal/render"
)

// Config captures runtime configuration for the application.
type Config struct {
	MaxFPS        int     `yaml:"max_fps"`
	RepeatDelay   int     `yaml:"repeat_delay"`
	RepeatCadence int     `yaml:"repeat_cadence"`
	Theme         string  `yaml:"theme"`
	QuitButton    string  `yaml:"quit_button"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Headless      bool    `yaml:"headless"`
	Logging       Logging `yaml:"logging"`
}

// Logging selects the log file, its level and whether JSON trace entries
// and OTLP span export are enabled.
type Logging struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
	Trace bool   `yaml:"trace"`
}

const (
	envFPS      = "STACKUI_FPS"
	envTheme    = "STACKUI_THEME"
	envLogFile  = "STACKUI_LOG_FILE"
	envLogLevel = "STACKUI_LOG_LEVEL"
	envTrace    = "STACKUI_TRACE"
	envHeadless = "STACKUI_HEADLESS"
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxFPS:        60,
		RepeatDelay:   input.DefaultRepeatDelay,
		RepeatCadence: input.DefaultRepeatCadence,
		Theme:         render.Light.String(),
		QuitButton:    "plus",
		Width:         1280,
		Height:        720,
		Logging:       Logging{Level: logging.LevelInfo.String()},
	}
}

// LoadFile overlays the YAML document at path onto cfg. Keys missing from
// the file keep their current values.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays STACKUI_* variables from environ (KEY=VALUE entries).
// Unparseable numbers and booleans are reported, not ignored.
func (cfg *Config) ApplyEnv(environ []string) error {
	env := parseEnv(environ)
	if v, ok := env[envFPS]; ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", envFPS, err)
		}
		cfg.MaxFPS = n
	}
	if v, ok := env[envTheme]; ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := env[envLogFile]; ok && v != "" {
		cfg.Logging.File = v
	}
	if v, ok := env[envLogLevel]; ok && v != "" {
		cfg.Logging.Level = v
	}
	for key, dst := range map[string]*bool{envTrace: &cfg.Logging.Trace, envHeadless: &cfg.Headless} {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

// RegisterFlags defines the command-line flags on fs, defaulting to the
// current values.
func (cfg *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("fps", cfg.MaxFPS, "maximum frames per second (0 disables pacing)")
	fs.Int("repeat-delay", cfg.RepeatDelay, "ticks a button is held before it repeats")
	fs.Int("repeat-cadence", cfg.RepeatCadence, "ticks between repeats")
	fs.String("theme", cfg.Theme, "color theme: light or dark")
	fs.String("quit-button", cfg.QuitButton, "button that quits from anywhere")
	fs.Bool("headless", cfg.Headless, "run without a terminal against scripted input")
	fs.Int("width", cfg.Width, "content width for headless runs")
	fs.Int("height", cfg.Height, "content height for headless runs")
	fs.String("log-file", cfg.Logging.File, "path to the log file")
	fs.String("log-level", cfg.Logging.Level, "log level: error, info or debug")
	fs.Bool("trace", cfg.Logging.Trace, "enable JSON trace logging and span export")
}

// ApplyFlags overlays the flags the user set explicitly.
func (cfg *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var errs []error
	fs.Visit(func(f *pflag.Flag) {
		var err error
		switch f.Name {
		case "fps":
			cfg.MaxFPS, err = fs.GetInt(f.Name)
		case "repeat-delay":
			cfg.RepeatDelay, err = fs.GetInt(f.Name)
		case "repeat-cadence":
			cfg.RepeatCadence, err = fs.GetInt(f.Name)
		case "theme":
			cfg.Theme, err = fs.GetString(f.Name)
		case "quit-button":
			cfg.QuitButton, err = fs.GetString(f.Name)
		case "headless":
			cfg.Headless, err = fs.GetBool(f.Name)
		case "width":
			cfg.Width, err = fs.GetInt(f.Name)
		case "height":
			cfg.Height, err = fs.GetInt(f.Name)
		case "log-file":
			cfg.Logging.File, err = fs.GetString(f.Name)
		case "log-level":
			cfg.Logging.Level, err = fs.GetString(f.Name)
		case "trace":
			cfg.Logging.Trace, err = fs.GetBool(f.Name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Validate rejects values the runtime cannot use.
func (cfg Config) Validate() error {
	if cfg.MaxFPS < 0 {
		return fmt.Errorf("max fps must be >= 0 (got %d)", cfg.MaxFPS)
	}
	if cfg.RepeatDelay <= 0 {
		return fmt.Errorf("repeat delay must be > 0 (got %d)", cfg.RepeatDelay)
	}
	if cfg.RepeatCadence <= 0 {
		return fmt.Errorf("repeat cadence must be > 0 (got %d)", cfg.RepeatCadence)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("content size must be >= 0 (got %dx%d)", cfg.Width, cfg.Height)
	}
	if _, err := render.ParseVariant(cfg.Theme); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if _, ok := button.Parse(cfg.QuitButton); !ok {
		return fmt.Errorf("unknown quit button %q", cfg.QuitButton)
	}
	return nil
}

// ThemeVariant returns the parsed theme; call after Validate.
func (cfg Config) ThemeVariant() render.Variant {
	v, _ := render.ParseVariant(cfg.Theme)
	return v
}

// LogLevel returns the parsed log level; call after Validate.
func (cfg Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(cfg.Logging.Level)
	return l
}

// Quit returns the parsed quit button; call after Validate.
func (cfg Config) Quit() button.Button {
	b, _ := button.Parse(cfg.QuitButton)
	return b
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}
