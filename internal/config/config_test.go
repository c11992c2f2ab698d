package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Patch.Strict {
		t.Fatalf("strict should default to false")
	}
	if !cfg.Patch.AtomicEnabled() {
		t.Fatalf("atomic writes should default to on")
	}
	if !cfg.Refresh.DeferredEnabled() {
		t.Fatalf("deferred refresh should default to on")
	}
	if got := cfg.Watch.PollInterval(); got != time.Second {
		t.Fatalf("poll interval = %s, want 1s", got)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `
[patch]
strict = true
atomic = false

[refresh]
run = "touch refreshed"
deferred = false

[watch]
interval = "250ms"
auto_hide = true

[log]
level = "debug"
format = "JSON"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Patch.Strict || cfg.Patch.AtomicEnabled() {
		t.Fatalf("unexpected patch block: %+v", cfg.Patch)
	}
	if cfg.Refresh.Run != "touch refreshed" || cfg.Refresh.DeferredEnabled() {
		t.Fatalf("unexpected refresh block: %+v", cfg.Refresh)
	}
	if !cfg.Watch.AutoHide || cfg.Watch.PollInterval() != 250*time.Millisecond {
		t.Fatalf("unexpected watch block: %+v", cfg.Watch)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log block: %+v", cfg.Log)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"interval", "[watch]\ninterval = \"soon\"\n", ErrInvalidInterval},
		{"negativeInterval", "[watch]\ninterval = \"-1s\"\n", ErrInvalidInterval},
		{"format", "[log]\nformat = \"xml\"\n", ErrInvalidLogFormat},
		{"level", "[log]\nlevel = \"verbos\"\n", ErrInvalidLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tc.want) {
				t.Fatalf("Load err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadReportsSyntaxErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[patch\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	off := false
	cfg := Default()
	cfg.Patch.Atomic = &off
	cfg.Refresh.Run = "echo refresh"
	cfg.Watch.AutoHide = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Patch.AtomicEnabled() {
		t.Fatalf("atomic flag lost in round trip")
	}
	if got.Refresh.Run != "echo refresh" || !got.Watch.AutoHide {
		t.Fatalf("unexpected round trip result: %+v", got)
	}
}

func TestSaveValidates(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "yaml"
	if err := Save(filepath.Join(t.TempDir(), FileName), cfg); !errors.Is(err, ErrInvalidLogFormat) {
		t.Fatalf("Save err = %v, want ErrInvalidLogFormat", err)
	}
}

func TestSaveDefaultKeepsUnsetFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Patch.AtomicEnabled() || !got.Refresh.DeferredEnabled() {
		t.Fatalf("unset flags should stay enabled, got %+v", got)
	}
}

func TestLogLevelsAccepted(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		block := LogBlock{Level: level}
		block.applyDefaults()
		if err := block.Validate(); err != nil {
			t.Fatalf("level %q rejected: %v", level, err)
		}
	}
}
