// Package config loads chronometer settings from defaults, an optional YAML
// file and ERIDIAN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps a config failure with the operation and file involved.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Clock   ClockConfig   `yaml:"clock"`
	Eridian EridianConfig `yaml:"eridian"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// AssetsConfig names the decorative images. Relative paths resolve against Dir.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Earth      string `yaml:"earth"`
	Eridian    string `yaml:"eridian"`
}

type ClockConfig struct {
	Period time.Duration `yaml:"period"`
}

type EridianConfig struct {
	// Width is the glyph count of each time group, 2 or 3.
	Width int `yaml:"width"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Eridian Chronometer 🪐",
			Width:  1200,
			Height: 600,
		},
		Assets: AssetsConfig{
			Dir:        "assets",
			Background: "nebula.jpg",
			Earth:      "earth.png",
			Eridian:    "erid.png",
		},
		Clock:   ClockConfig{Period: time.Second},
		Eridian: EridianConfig{Width: 2},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if dir := getenv("ERIDIAN_ASSETS_DIR"); dir != "" {
		c.Assets.Dir = dir
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if getenv("ERIDIAN_DEBUG") == "true" {
		c.Logging.Level = "debug"
	}
	if getenv("ERIDIAN_JSON_LOGS") == "true" {
		c.Logging.JSON = true
	}

	if w, err := strconv.Atoi(getenv("ERIDIAN_WIDTH")); err == nil {
		c.Eridian.Width = w
	}
}

func (c Config) Validate() error {
	var problems []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %.0fx%.0f must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Clock.Period <= 0 {
		problems = append(problems, fmt.Sprintf("clock period %s must be positive", c.Clock.Period))
	}
	if c.Eridian.Width != 2 && c.Eridian.Width != 3 {
		problems = append(problems, fmt.Sprintf("eridian width %d must be 2 or 3", c.Eridian.Width))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Path resolves an asset file name against the assets directory.
func (a AssetsConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || a.Dir == "" {
		return name
	}
	return filepath.Join(a.Dir, name)
}
