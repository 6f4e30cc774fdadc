package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds CLI configuration.
type Config struct {
	DBPath  string
	NoMouse bool
	Version bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.tabulo/tabulo.db)")
	flag.BoolVar(&config.NoMouse, "no-mouse", false, "Disable mouse support")
	flag.BoolVar(&config.Version, "version", false, "Print version and exit")
	flag.Parse()

	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, ".tabulo")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		config.DBPath = filepath.Join(configDir, "tabulo.db")
	}

	return config, nil
}
