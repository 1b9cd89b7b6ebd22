package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigSaveAndLoad(t *testing.T) {
	// Use a temp dir as home
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		DataPath: "/tmp/custom.db",
		Port:     9090,
		Username: "frontdesk",
		Password: "secret",
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Verify file exists
	path := filepath.Join(tmp, ".config", "vd", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DataPath != cfg.DataPath {
		t.Errorf("data_path = %q, want %q", loaded.DataPath, cfg.DataPath)
	}
	if loaded.Port != cfg.Port {
		t.Errorf("port = %d, want %d", loaded.Port, cfg.Port)
	}
	if loaded.Username != cfg.Username {
		t.Errorf("username = %q, want %q", loaded.Username, cfg.Username)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.DataPath != "" || cfg.Port != 0 || cfg.Username != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestCredentialsDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VD_USERNAME", "")
	t.Setenv("VD_PASSWORD", "")

	username, password := getCredentials()
	if username != "admin" || password != "admin123" {
		t.Errorf("credentials = %q/%q, want admin/admin123", username, password)
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VD_USERNAME", "envuser")
	t.Setenv("VD_PASSWORD", "envpass")

	username, password := getCredentials()
	if username != "envuser" || password != "envpass" {
		t.Errorf("credentials = %q/%q, want envuser/envpass", username, password)
	}
}

func TestCredentialsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VD_USERNAME", "")
	t.Setenv("VD_PASSWORD", "")

	if err := saveConfig(CLIConfig{Username: "cfguser", Password: "cfgpass"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	username, password := getCredentials()
	if username != "cfguser" || password != "cfgpass" {
		t.Errorf("credentials = %q/%q, want cfguser/cfgpass", username, password)
	}
}

func TestPortFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VD_PORT", "3000")

	if got := getPort(); got != 3000 {
		t.Errorf("port = %d, want 3000", got)
	}
}

func TestPortDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VD_PORT", "")

	if got := getPort(); got != 8080 {
		t.Errorf("port = %d, want 8080", got)
	}
}

func TestDataPathFromFlag(t *testing.T) {
	old := flagDB
	flagDB = "/tmp/flagged.db"
	defer func() { flagDB = old }()

	path, err := dataPath()
	if err != nil {
		t.Fatalf("dataPath: %v", err)
	}
	if path != "/tmp/flagged.db" {
		t.Errorf("path = %q, want /tmp/flagged.db", path)
	}
}

func TestDataPathFromEnv(t *testing.T) {
	old := flagDB
	flagDB = ""
	defer func() { flagDB = old }()
	t.Setenv("VD_DB", "/tmp/env.db")

	path, err := dataPath()
	if err != nil {
		t.Fatalf("dataPath: %v", err)
	}
	if path != "/tmp/env.db" {
		t.Errorf("path = %q, want /tmp/env.db", path)
	}
}
