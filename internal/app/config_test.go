package app

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lifefade/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.Size{W: 426, H: 240}, cfg.GridSize())
	assert.Equal(t, 3, cfg.Context().CellSide)

	opts := cfg.LifeOptions()
	assert.Equal(t, 60, opts.FadeGrades)
	assert.Equal(t, 6, opts.InitPercent)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-side", "8", "-width", "80", "-height", "40", "-seed", "12"})
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 5}, cfg.GridSize())
	assert.Equal(t, int64(12), cfg.LifeOptions().Seed)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	doc := "side: 5\nfade_grades: 30\nupdate_every: 2\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(newFlagSet(), []string{"-config", path, "-side", "4"})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Side, "explicit flags win over the file")
	assert.Equal(t, 30, cfg.FadeGrades)
	assert.Equal(t, 2, cfg.UpdateEvery)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1280, cfg.WindowWidth, "keys missing from the file keep defaults")
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("side: [1, 2"), 0o600))
	_, err = Load(newFlagSet(), []string{"-config", path})
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"zero side":      func(c *Config) { c.Side = 0 },
		"negative width": func(c *Config) { c.WindowWidth = -5 },
		"side too large": func(c *Config) { c.Side = 2000 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"zero update":    func(c *Config) { c.UpdateEvery = 0 },
		"negative fade":  func(c *Config) { c.FadeGrades = -1 },
		"zero fade":      func(c *Config) { c.FadeGrades = 0 },
		"zero init":      func(c *Config) { c.InitPercent = 0 },
		"init over 100":  func(c *Config) { c.InitPercent = 150 },
		"no workers":     func(c *Config) { c.Workers = 0 },
		"bad log level":  func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	_, err := Load(newFlagSet(), []string{"-side", "-1"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Load(newFlagSet(), []string{"-init", "0"})
	assert.ErrorIs(t, err, ErrInvalidConfig, "zero must not fall back to the engine default")
}

func TestLoggerHonorsLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=1")
}
