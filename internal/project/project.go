package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/21tools/sdkbanner/internal/config"
)

var (
	// ErrNotFound indicates no Unity project encloses the starting directory.
	ErrNotFound = errors.New("not inside a Unity project (no Packages/ next to Assets/ or ProjectSettings/)")
	// ErrNotUnityProject indicates an explicit root lacks Unity project markers.
	ErrNotUnityProject = errors.New("not a Unity project root")
)

// Project is a Unity project discovered on disk.
type Project struct {
	Root       string
	ConfigPath string
	Config     config.Config
	StylePath  string
}

// Discover walks upward from start until it finds a Unity project root.
func Discover(start string) (*Project, error) {
	root, err := locateRoot(start)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// Load constructs a Project from a known root directory.
func Load(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if !isProjectRoot(abs) {
		return nil, fmt.Errorf("%w: %s", ErrNotUnityProject, abs)
	}

	cfgPath := filepath.Join(abs, config.FileName)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	return &Project{
		Root:       abs,
		ConfigPath: cfgPath,
		Config:     cfg,
		StylePath:  filepath.Join(abs, filepath.FromSlash(banner.StylePath)),
	}, nil
}

// EnsureConfig writes a default config when none exists and returns the
// config now on disk along with whether it was created.
func (p *Project) EnsureConfig() (config.Config, bool, error) {
	if _, err := os.Stat(p.ConfigPath); err == nil {
		cfg, err := config.Load(p.ConfigPath)
		return cfg, false, err
	}
	cfg := config.Default()
	if err := config.Save(p.ConfigPath, cfg); err != nil {
		return config.Config{}, false, err
	}
	p.Config = cfg
	return cfg, true, nil
}

func locateRoot(start string) (string, error) {
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if isProjectRoot(cur) {
			return cur, nil
		}
		next := filepath.Dir(cur)
		if next == cur {
			break
		}
		cur = next
	}
	return "", ErrNotFound
}

func isProjectRoot(dir string) bool {
	if !isDir(filepath.Join(dir, "Packages")) {
		return false
	}
	return isDir(filepath.Join(dir, "Assets")) || isDir(filepath.Join(dir, "ProjectSettings"))
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}
