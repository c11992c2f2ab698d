package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/21tools/sdkbanner/internal/config"
)

func makeUnityProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"Assets/Scenes", "Packages", "ProjectSettings"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := makeUnityProject(t)
	start := filepath.Join(root, "Assets", "Scenes")

	proj, err := Discover(start)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if proj.Root != root {
		t.Fatalf("root = %s, want %s", proj.Root, root)
	}
	want := filepath.Join(root, filepath.FromSlash(banner.StylePath))
	if proj.StylePath != want {
		t.Fatalf("style path = %s, want %s", proj.StylePath, want)
	}
	if proj.ConfigPath != filepath.Join(root, config.FileName) {
		t.Fatalf("unexpected config path %s", proj.ConfigPath)
	}
}

func TestDiscoverOutsideProject(t *testing.T) {
	if _, err := Discover(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Discover err = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsNonProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "Packages"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); !errors.Is(err, ErrNotUnityProject) {
		t.Fatalf("Load err = %v, want ErrNotUnityProject", err)
	}
}

func TestLoadReadsConfig(t *testing.T) {
	root := makeUnityProject(t)
	data := "[patch]\nstrict = true\n"
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	proj, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !proj.Config.Patch.Strict {
		t.Fatalf("expected strict patching from config")
	}
}

func TestEnsureConfig(t *testing.T) {
	root := makeUnityProject(t)
	proj, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}

	if _, created, err := proj.EnsureConfig(); err != nil || !created {
		t.Fatalf("first EnsureConfig created=%v err=%v", created, err)
	}
	if _, err := os.Stat(proj.ConfigPath); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, created, err := proj.EnsureConfig(); err != nil || created {
		t.Fatalf("second EnsureConfig created=%v err=%v", created, err)
	}
}
