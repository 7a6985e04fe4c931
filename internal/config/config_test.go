package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", value)
	}

	if d := GetDuration("ai.cache_ttl"); d != 24*time.Hour {
		t.Errorf("Expected ai.cache_ttl 24h, got %s", d)
	}
	if n := GetInt("ai.rate_limit"); n != 10 {
		t.Errorf("Expected ai.rate_limit 10, got %d", n)
	}
	if got := GetString("database.path"); got != filepath.Join(tmpDir, "windpalette.db") {
		t.Errorf("Expected database next to config, got %s", got)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "9090")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "9090" {
		t.Errorf("Expected http_port to be 9090, got %s", value)
	}

	// Value survives a reload
	InitConfig(configPath)
	if value := GetString("server.http_port"); value != "9090" {
		t.Errorf("Expected persisted http_port 9090, got %s", value)
	}
}

func TestEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("WINDPALETTE_AI_MODEL", "test-model")

	if err := InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if got := GetString("ai.model"); got != "test-model" {
		t.Errorf("Expected env override, got %s", got)
	}
}

func TestDotEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envFile, []byte("WINDPALETTE_AUTH_GOOGLE_CLIENT_ID=from-dotenv\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("WINDPALETTE_AUTH_GOOGLE_CLIENT_ID") })

	if err := InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if got := GetString("auth.google_client_id"); got != "from-dotenv" {
		t.Errorf("Expected value from .env, got %s", got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("WINDPALETTE_CONFIG", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("Expected env config path, got %s", got)
	}
}
