package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Environment holds the process-level settings read from the environment.
// Empty paths fall back to locations under the user's home directory.
type Environment struct {
	ConfigPath string `env:"INV_CONFIG_PATH"`
	Home       string `env:"INV_HOME"`
	JWTSecret  string `env:"INV_JWT_SECRET"`
	LogLevel   string `env:"INV_LOG_LEVEL" envDefault:"info"`
}

// LoadEnvironment parses the INV_* environment variables.
func LoadEnvironment() (*Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &e, nil
}

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - INV_CONFIG_PATH: config file location (default: ~/.config/inv.toml)
//   - INV_HOME: base directory for inv data (default: ~/.local/share/inv)
func GetDefaults() (map[string]string, error) {
	e, err := LoadEnvironment()
	if err != nil {
		return nil, err
	}

	configPath := e.ConfigPath
	baseDir := e.Home
	if configPath == "" || baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if configPath == "" {
			configPath = filepath.Join(homeDir, ".config", "inv.toml")
		}
		if baseDir == "" {
			baseDir = filepath.Join(homeDir, ".local", "share", "inv")
		}
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
		"log_level":   e.LogLevel,
	}, nil
}
