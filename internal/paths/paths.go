// Package paths resolves configuration and data directory locations for
// grimoire across platforms.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "GRIMOIRE_CONFIG_DIR"
	EnvDataDir   = "GRIMOIRE_DATA_DIR"
)

// appDirName is the per-platform directory name under the user config/data
// roots.
const appDirName = "grimoire"

// platformDir holds platform-detection functions that can be overridden in
// tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/grimoire (fallback ~/.config/grimoire)
// macOS:   ~/Library/Application Support/grimoire
// Windows: %APPDATA%/grimoire
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory,
// where the backing database file lives.
//
// Linux:   $XDG_DATA_HOME/grimoire (fallback ~/.local/share/grimoire)
// macOS:   ~/Library/Application Support/grimoire
// Windows: %APPDATA%/grimoire
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir applies precedence: explicit flag value, then the
// environment override, then the platform default.
func ResolveConfigDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env, nil
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies precedence: explicit flag value, then the value
// loaded from config.yaml, then the environment override, then the platform
// default.
func ResolveDataDir(flagValue, configValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env, nil
	}
	return DefaultDataDir()
}
