package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the scribe.toml configuration.
type Config struct {
	// ServerURL is the base URL of the blog server.
	ServerURL string `toml:"server_url"`
	// DefaultTarget is the preselected target language for translations.
	DefaultTarget string `toml:"default_target"`
	// Debug enables verbose logging to stderr.
	Debug bool `toml:"debug"`
}

const (
	defaultServerURL = "http://localhost:5000"
	defaultTarget    = "en"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:     defaultServerURL,
		DefaultTarget: defaultTarget,
	}
}

// Load reads configuration in precedence order: built-in defaults,
// scribe.toml from the launch directory, then environment overrides
// (SCRIBE_SERVER, SCRIBE_TARGET_LANG). A missing file is not an error.
// It returns the config and the path of the file it loaded, if any.
func Load(launchDir string) (Config, string, error) {
	cfg := Default()

	configPath := filepath.Join(launchDir, "scribe.toml")
	loadedPath := ""
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		loadedPath = configPath
	}

	applyEnv(&cfg)
	return cfg, loadedPath, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SCRIBE_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("SCRIBE_TARGET_LANG"); v != "" {
		cfg.DefaultTarget = v
	}
}
