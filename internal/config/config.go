package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const appName = "majian"

// Config represents the application configuration
type Config struct {
	Language     string `toml:"language"`
	NamesFile    string `toml:"names_file"`
	Color        bool   `toml:"color"`
	Celebrate    bool   `toml:"celebrate"`
	ShowTutorial bool   `toml:"show_tutorial"`
	Seed         int64  `toml:"seed"`
	LogLevel     string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Language:     "zh",
		Color:        true,
		Celebrate:    true,
		ShowTutorial: true,
		LogLevel:     "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCacheDir returns the application directory under XDG_CACHE_HOME
func GetCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache", appName)
}

// GetNamesLibraryPath returns the directory holding tile name packs
func GetNamesLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "names")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetLogFilePath returns the path to the log file
func GetLogFilePath() string {
	return filepath.Join(GetCacheDir(), appName+".log")
}

// LoadConfig loads the config file, creating it with defaults when missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// keys missing from the file keep their default
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.Wrap(err, "error creating config directory")
	}

	file, err := os.Create(configPath)
	if err != nil {
		return errors.Wrap(err, "error opening config file")
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return errors.Wrap(err, "error encoding config")
	}

	return nil
}

// GetNamesPath resolves a name pack, either in the names library or as a
// path relative to the working directory
func GetNamesPath(name string) (string, error) {
	libraryPath := filepath.Join(GetNamesLibraryPath(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}
	if _, err := os.Stat(libraryPath + ".toml"); err == nil {
		return libraryPath + ".toml", nil
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", errors.Errorf("name pack not found: %s", name)
}

// SetNamesFile stores the name pack used by default
func SetNamesFile(path string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.NamesFile = path
	return Save(config)
}
