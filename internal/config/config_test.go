package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func TestPaths(t *testing.T) {
	dir := withXDG(t)

	tests := []struct {
		got, want string
	}{
		{GetConfigFilePath(), filepath.Join(dir, "config", "majian", "config.toml")},
		{GetNamesLibraryPath(), filepath.Join(dir, "data", "majian", "names")},
		{GetCacheDir(), filepath.Join(dir, "cache", "majian")},
		{GetLogFilePath(), filepath.Join(dir, "cache", "majian", "majian.log")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %s, want %s", tt.got, tt.want)
		}
	}
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	withXDG(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	withXDG(t)

	cfg := Default()
	cfg.Language = "en"
	cfg.Seed = 1234
	cfg.Celebrate = false
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	withXDG(t)

	path := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("language = \"en\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "en" || !cfg.Color || cfg.LogLevel != "info" {
		t.Errorf("got %+v", cfg)
	}
}

func TestNamesPath(t *testing.T) {
	withXDG(t)

	if err := os.MkdirAll(GetNamesLibraryPath(), 0755); err != nil {
		t.Fatal(err)
	}
	packPath := filepath.Join(GetNamesLibraryPath(), "animals.toml")
	if err := os.WriteFile(packPath, []byte("dragon = \"Tiger\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := GetNamesPath("animals")
	if err != nil {
		t.Fatal(err)
	}
	if got != packPath {
		t.Errorf("got %s, want %s", got, packPath)
	}

	if _, err := GetNamesPath("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown pack")
	}

	if err := SetNamesFile(packPath); err != nil {
		t.Fatal(err)
	}
	cfg, _ := LoadConfig()
	if cfg.NamesFile != packPath {
		t.Errorf("names_file = %q", cfg.NamesFile)
	}
}
