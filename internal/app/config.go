package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"lifefade/internal/core"
	"lifefade/internal/life"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config represents the run parameters for the application. Values come from
// defaults, then an optional YAML file, then explicit command-line flags.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Side         int    `yaml:"side"`
	TPS          int    `yaml:"tps"`
	UpdateEvery  int    `yaml:"update_every"`
	FadeGrades   int    `yaml:"fade_grades"`
	InitPercent  int    `yaml:"init_percent"`
	Workers      int    `yaml:"workers"`
	Seed         int64  `yaml:"seed"`
	ShowHUD      bool   `yaml:"show_hud"`
	DirectDraw   bool   `yaml:"direct_draw"`
	LogLevel     string `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		Side:         3,
		TPS:          60,
		UpdateEvery:  life.DefaultUpdateEvery,
		FadeGrades:   life.DefaultFadeGrades,
		InitPercent:  life.DefaultInitPercent,
		Workers:      runtime.NumCPU(),
		LogLevel:     "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.Side, "side", c.Side, "cell side length in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.UpdateEvery, "update-every", c.UpdateEvery, "frames per generation")
	fs.IntVar(&c.FadeGrades, "fade", c.FadeGrades, "generations a dead cell takes to fade out")
	fs.IntVar(&c.InitPercent, "init", c.InitPercent, "percentage of cells alive after a reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for resets (0 picks a random one)")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the statistics panel")
	fs.BoolVar(&c.DirectDraw, "direct-draw", c.DirectDraw, "draw each cell as a vector rect instead of one scaled image")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Load parses args into a new Config. A -config file is applied first and
// explicit flags override it.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	var path string
	fs.StringVar(&path, "config", "", "YAML file with default settings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	var problems []string
	if c.Side <= 0 {
		problems = append(problems, fmt.Sprintf("side %d must be positive", c.Side))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		problems = append(problems, fmt.Sprintf("window %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.Side > 0 && !c.GridSize().Valid() {
		problems = append(problems, fmt.Sprintf("window %dx%d holds no %dpx cell", c.WindowWidth, c.WindowHeight, c.Side))
	}
	if c.TPS <= 0 {
		problems = append(problems, fmt.Sprintf("tps %d must be positive", c.TPS))
	}
	if c.UpdateEvery <= 0 {
		problems = append(problems, fmt.Sprintf("update_every %d must be positive", c.UpdateEvery))
	}
	// Zero selects the engine default, so it is rejected here rather than
	// silently replaced.
	if c.FadeGrades < 1 {
		problems = append(problems, fmt.Sprintf("fade_grades %d must be at least 1", c.FadeGrades))
	}
	if c.InitPercent < 1 || c.InitPercent > 100 {
		problems = append(problems, fmt.Sprintf("init_percent %d must be within [1,100]", c.InitPercent))
	}
	if c.Workers < 1 {
		problems = append(problems, fmt.Sprintf("workers %d must be at least 1", c.Workers))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// GridSize is the number of whole cells that fit in the window.
func (c *Config) GridSize() core.Size {
	if c.Side <= 0 {
		return core.Size{}
	}
	return core.Size{W: c.WindowWidth / c.Side, H: c.WindowHeight / c.Side}
}

// Context returns the bootstrap data for the engine and state factories.
func (c *Config) Context() core.Context {
	return core.Context{GridSize: c.GridSize(), CellSide: c.Side}
}

// LifeOptions maps the config onto engine options.
func (c *Config) LifeOptions() life.Options {
	return life.Options{
		FadeGrades:  c.FadeGrades,
		UpdateEvery: c.UpdateEvery,
		InitPercent: c.InitPercent,
		Workers:     c.Workers,
		Seed:        c.Seed,
	}
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
