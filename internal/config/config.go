// Package config loads clockface settings from flags, environment, a YAML
// file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"clockface/internal/engine2D"
	"clockface/internal/utils"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	AppName    = "clockface"
	EnvPrefix  = "CLOCKFACE"
	configName = "config.yaml"
)

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Render RenderConfig `mapstructure:"render"`
	Clock  ClockConfig  `mapstructure:"clock"`
	Log    LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Width        int  `mapstructure:"width"`
	Height       int  `mapstructure:"height"`
	FPS          int  `mapstructure:"fps"`
	Fullscreen   bool `mapstructure:"fullscreen"`
	DebugOverlay bool `mapstructure:"debug_overlay"`
}

type ThemeConfig struct {
	Name       string `mapstructure:"name"`
	Background string `mapstructure:"background"`
	Foreground string `mapstructure:"foreground"`
}

type RenderConfig struct {
	Density float64 `mapstructure:"density"`
}

type ClockConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Resync   time.Duration `mapstructure:"resync"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 720)
	v.SetDefault("window.height", 1280)
	v.SetDefault("window.fps", 60)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.debug_overlay", false)
	v.SetDefault("theme.name", "dark")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.foreground", "")
	v.SetDefault("render.density", 1.0)
	v.SetDefault("clock.interval", engine2D.DefaultTickInterval)
	v.SetDefault("clock.resync", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// New returns a viper instance with defaults and CLOCKFACE_* env binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DiscoverConfigFile returns the first existing config file among the
// explicit path, the XDG config home and the working directory. An explicit
// path that does not exist is an error; a missing default is not.
func DiscoverConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	candidates := []string{
		filepath.Join(xdg.ConfigHome, AppName, configName),
		AppName + ".yaml",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			utils.Debug("Using config file: %s", p)
			return p, nil
		}
	}
	return "", nil
}

// Load reads the config file (if any) into v and decodes the result.
func Load(v *viper.Viper, explicitPath string) (*Config, error) {
	path, err := DiscoverConfigFile(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and that theme values resolve.
func (c *Config) Validate() error {
	var problems []string
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		problems = append(problems, fmt.Sprintf("window.fps %d must be positive", c.Window.FPS))
	}
	if c.Render.Density <= 0 {
		problems = append(problems, fmt.Sprintf("render.density %g must be positive", c.Render.Density))
	}
	if c.Clock.Interval <= 0 {
		problems = append(problems, fmt.Sprintf("clock.interval %s must be positive", c.Clock.Interval))
	}
	if c.Clock.Resync < 0 {
		problems = append(problems, fmt.Sprintf("clock.resync %s must not be negative", c.Clock.Resync))
	}
	if _, err := utils.ParseLogLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.ResolveTheme(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ResolveTheme returns the named theme with any color overrides applied.
func (c *Config) ResolveTheme() (engine2D.Theme, error) {
	theme, ok := engine2D.ThemeByName(c.Theme.Name)
	if !ok {
		return engine2D.Theme{}, fmt.Errorf("unknown theme %q", c.Theme.Name)
	}

	override := func(value string, dst *color.RGBA) error {
		if value == "" {
			return nil
		}
		parsed, err := engine2D.ParseColor(value)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
	if err := override(c.Theme.Background, &theme.Background); err != nil {
		return engine2D.Theme{}, err
	}
	if err := override(c.Theme.Foreground, &theme.Foreground); err != nil {
		return engine2D.Theme{}, err
	}
	return theme, nil
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() utils.LogLevel {
	level, _ := utils.ParseLogLevel(c.Log.Level)
	return level
}
