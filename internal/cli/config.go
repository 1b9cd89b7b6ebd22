package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"visitordesk/internal/kvstore"
)

// Default credential pair and listen port when nothing is configured.
const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
	defaultPort     = 8080
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	DataPath string `yaml:"data_path,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vd", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// dataPath resolves the database path: --db flag, env var, config, default.
func dataPath() (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	if v := os.Getenv("VD_DB"); v != "" {
		return v, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	return kvstore.DefaultPath()
}

// getCredentials returns the credential pair from env vars, config, or the
// built-in default.
func getCredentials() (string, string) {
	username := os.Getenv("VD_USERNAME")
	password := os.Getenv("VD_PASSWORD")
	if username != "" && password != "" {
		return username, password
	}

	cfg, err := loadConfig()
	if err == nil && cfg.Username != "" && cfg.Password != "" {
		return cfg.Username, cfg.Password
	}

	return defaultUsername, defaultPassword
}

// getPort returns the listen port from env var, config, or default.
func getPort() int {
	if v := os.Getenv("VD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	cfg, err := loadConfig()
	if err == nil && cfg.Port > 0 {
		return cfg.Port
	}
	return defaultPort
}
