// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mdtask/mdtask/internal/domain"
)

// ConfigFileName is the working-directory config file name.
const ConfigFileName = ".mdtask.toml"

// globalConfigFileName is the file name under the global config dir.
const globalConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local config file
	globalConfDir string // Global config directory (e.g. ~/.config/mdtask)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mdtask")
}

// Load returns the merged configuration. Precedence: built-in defaults,
// then the global file, then the working-directory file.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		globalPath := filepath.Join(l.globalConfDir, globalConfigFileName)
		global, err := l.loadFile(globalPath)
		if err != nil {
			return nil, err
		}
		if global != nil {
			mergeConfigs(base, global)
		}
	}

	localPath := filepath.Join(l.workDir, ConfigFileName)
	local, err := l.loadFile(localPath)
	if err != nil {
		return nil, err
	}
	if local != nil {
		mergeConfigs(base, local)
	}

	return base, nil
}

// loadFile reads one TOML file. A missing file yields nil, nil.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays set fields of override onto base.
func mergeConfigs(base, override *domain.Config) {
	if override.Store.Path != "" {
		base.Store.Path = override.Store.Path
	}
	if override.Store.Format != "" {
		base.Store.Format = override.Store.Format
	}
	if override.Format.Indent > 0 {
		base.Format.Indent = override.Format.Indent
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
}
