// Package config loads izconfig.json and resolves the workspace base directory.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aligoren/iz/internal/logfields"
)

// FileName is the configuration file iz looks for in the working directory.
const FileName = "izconfig.json"

// Config represents the izconfig.json contents
type Config struct {
	Commands map[string]string `json:"commands"`
	TempDir  string            `json:"temp_dir"`
	Keep     bool              `json:"keep"`
}

// Load reads izconfig.json from the current working directory.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFrom(filepath.Join(cwd, FileName))
}

// LoadFrom reads a configuration file at an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("izconfig.json not found. Example content:\n%s", exampleJSON())
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// ResolveBaseDir determines the workspace base directory.
// Priority: --temp-dir flag > IZTEMP environment variable > config temp_dir >
// .iztemp beneath the current working directory.
func (c *Config) ResolveBaseDir(flagTempDir string) (string, error) {
	if flagTempDir != "" {
		return flagTempDir, nil
	}

	if envTempDir := os.Getenv("IZTEMP"); envTempDir != "" {
		return envTempDir, nil
	}

	if c.TempDir != "" {
		return c.TempDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return filepath.Join(cwd, ".iztemp"), nil
}

// exampleConfig is the sample configuration embedded in the missing-file
// error so first-time users can copy it verbatim.
func exampleConfig() *Config {
	return &Config{
		Commands: map[string]string{
			"run":   "dotnet run",
			"build": "dotnet build",
			"test":  "dotnet test",
		},
		TempDir: ".iztemp",
		Keep:    false,
	}
}

func exampleJSON() string {
	data, _ := json.MarshalIndent(exampleConfig(), "", "  ")
	return string(data)
}
