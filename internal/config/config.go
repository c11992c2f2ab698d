package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// FileName is the per-project settings file, stored at the Unity project root.
const FileName = ".sdkbanner.toml"

// Config captures the user editable settings stored in .sdkbanner.toml.
type Config struct {
	Patch   PatchBlock   `toml:"patch"`
	Refresh RefreshBlock `toml:"refresh"`
	Watch   WatchBlock   `toml:"watch"`
	Log     LogBlock     `toml:"log"`
}

// PatchBlock controls how the stylesheet is rewritten.
type PatchBlock struct {
	Strict bool  `toml:"strict"`
	Atomic *bool `toml:"atomic,omitempty"`
}

// RefreshBlock describes what runs after the stylesheet changes.
type RefreshBlock struct {
	Run      string `toml:"run"`
	Deferred *bool  `toml:"deferred,omitempty"`
}

// WatchBlock governs sdkbanner watch.
type WatchBlock struct {
	Interval string `toml:"interval"`
	AutoHide bool   `toml:"auto_hide"`
}

type LogBlock struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

var (
	// ErrInvalidInterval indicates watch.interval is not a positive duration.
	ErrInvalidInterval = errors.New("config.watch.interval must be a positive duration such as 1s")
	// ErrInvalidLogLevel indicates log.level is not a zap level name.
	ErrInvalidLogLevel = errors.New("config.log.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates log.format is not recognized.
	ErrInvalidLogFormat = errors.New("config.log.format must be console or json")
)

// AtomicEnabled reports whether writes go through a temp file and rename.
func (p PatchBlock) AtomicEnabled() bool {
	if p.Atomic == nil {
		return true
	}
	return *p.Atomic
}

// DeferredEnabled reports whether a second refresh pass follows each write.
func (r RefreshBlock) DeferredEnabled() bool {
	if r.Deferred == nil {
		return true
	}
	return *r.Deferred
}

// PollInterval returns the parsed watch interval.
func (w WatchBlock) PollInterval() time.Duration {
	d, err := time.ParseDuration(w.Interval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

func (w *WatchBlock) applyDefaults() {
	if w.Interval == "" {
		w.Interval = "1s"
	}
}

func (w WatchBlock) Validate() error {
	d, err := time.ParseDuration(w.Interval)
	if err != nil || d <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

func (l *LogBlock) applyDefaults() {
	if l.Level == "" {
		l.Level = "warn"
	}
	if l.Format == "" {
		l.Format = "console"
	} else {
		l.Format = strings.ToLower(l.Format)
	}
}

func (l LogBlock) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	switch l.Format {
	case "console", "json":
		return nil
	default:
		return ErrInvalidLogFormat
	}
}

// Default returns the settings used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Watch.applyDefaults()
	c.Log.applyDefaults()
}

// Validate ensures the configuration can guide sdkbanner's behavior.
func (c Config) Validate() error {
	if err := c.Watch.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
