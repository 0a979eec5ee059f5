package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atelier.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", config.Server.Port)
	}
	if config.Storage.Badger.Path != "./data" {
		t.Errorf("Expected default badger path ./data, got %s", config.Storage.Badger.Path)
	}
	if config.Analysis.Enabled {
		t.Error("Scheduled analysis must be opt-in")
	}
	if config.WebSocket.EventsPerSecond != 20 || config.WebSocket.Burst != 40 {
		t.Errorf("Unexpected websocket defaults: %+v", config.WebSocket)
	}
}

func TestLoadFromFiles_Override(t *testing.T) {
	path := writeConfigFile(t, `
environment = "production"

[server]
port = 9090

[analysis]
enabled = true
schedule = "0 0 * * * *"
`)

	config, err := LoadFromFiles(path)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if !config.IsProduction() {
		t.Error("Expected production environment")
	}
	if config.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", config.Server.Port)
	}
	if !config.Analysis.Enabled || config.Analysis.Schedule != "0 0 * * * *" {
		t.Errorf("Unexpected analysis config: %+v", config.Analysis)
	}
	// Untouched sections keep their defaults
	if config.Server.Host != "localhost" {
		t.Errorf("Expected default host, got %s", config.Server.Host)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	first := writeConfigFile(t, "[server]\nport = 9001\n")
	second := writeConfigFile(t, "[server]\nport = 9002\n")

	config, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if config.Server.Port != 9002 {
		t.Errorf("Expected the later file to win, got %d", config.Server.Port)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	if _, err := LoadFromFiles("/does/not/exist.toml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 7070, "0.0.0.0")
	if config.Server.Port != 7070 || config.Server.Host != "0.0.0.0" {
		t.Errorf("Flag overrides not applied: %+v", config.Server)
	}

	ApplyFlagOverrides(config, 0, "")
	if config.Server.Port != 7070 || config.Server.Host != "0.0.0.0" {
		t.Error("Zero-value flags must not clobber existing settings")
	}
}

func TestIDPrefixes(t *testing.T) {
	cases := []struct {
		id     string
		prefix string
	}{
		{NewProjectID(), "proj_"},
		{NewScreenID(), "scr_"},
		{NewComponentID(), "cmp_"},
		{NewDataModelID(), "dm_"},
		{NewDesignSystemID(), "ds_"},
		{NewJourneyID(), "uj_"},
	}
	for _, tc := range cases {
		if !strings.HasPrefix(tc.id, tc.prefix) {
			t.Errorf("Expected prefix %s, got %s", tc.prefix, tc.id)
		}
		if len(tc.id) != len(tc.prefix)+36 {
			t.Errorf("Expected a uuid after the prefix, got %s", tc.id)
		}
	}
}
