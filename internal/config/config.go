package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/contactform/internal/ui"
)

const (
	appName    = "contactform"
	configFile = "config.yaml"
)

// Config holds user preferences loaded from config.yaml. Flags override it.
type Config struct {
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFile   string `yaml:"log_file,omitempty"`
	SavePath  string `yaml:"save_path,omitempty"`
	CharLimit int    `yaml:"char_limit"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:     "classic",
		CharLimit: 200,
	}
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/contactform or $HOME/.config/contactform
//   - macOS: $HOME/.config/contactform
//   - Windows: %LOCALAPPDATA%\contactform
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	case "darwin":
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads path, or the default location when path is empty. A missing
// file yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	// an empty theme falls back to classic, as ui.SetTheme does
	if theme := strings.ToLower(c.Theme); theme != "" && !slices.Contains(ui.Themes, theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes, ", "))
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", c.CharLimit)
	}
	return nil
}

// Save writes c to path, creating the directory when needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
