// Package config loads CLI configuration from the .notionctl directory:
// a YAML config file for defaults and an optional .env file for the token.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all CLI configuration
type Config struct {
	API    APIConfig    `yaml:"api"`
	Query  QueryConfig  `yaml:"query"`
	Output OutputConfig `yaml:"output"`
}

// APIConfig holds Notion API settings
type APIConfig struct {
	Token      string `yaml:"token"`
	Version    string `yaml:"version"`
	MaxRetries int    `yaml:"max_retries"`
	Timeout    int    `yaml:"timeout"`
}

// QueryConfig holds default query settings
type QueryConfig struct {
	Database string `yaml:"database"` // default database for query commands
	PageSize int    `yaml:"page_size"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format  string `yaml:"format"` // "markdown", "json", or "text"
	Color   bool   `yaml:"color"`
	Verbose bool   `yaml:"verbose"`
}

// NewDefault creates a Config with default values
func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			Version:    "2022-06-28",
			MaxRetries: 3,
			Timeout:    30,
		},
		Query: QueryConfig{
			PageSize: 100,
		},
		Output: OutputConfig{
			Format: "markdown",
			Color:  true,
		},
	}
}

// ConfigFileName is the name of the YAML config file.
const ConfigFileName = "config.yaml"

// Path returns the path to the config file under the given base directory.
func Path(baseDir string) string {
	return filepath.Join(baseDir, Dir, ConfigFileName)
}

// Load reads configuration from baseDir/.notionctl/config.yaml, falling back
// to defaults when the file does not exist. Values present in the file
// override defaults; absent values keep them.
func Load(baseDir string) (*Config, error) {
	cfg := NewDefault()

	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// LoadFromHome loads configuration from the user's home directory.
func LoadFromHome() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return NewDefault(), nil
	}
	return Load(home)
}

// Save writes the configuration to baseDir/.notionctl/config.yaml.
func (c *Config) Save(baseDir string) error {
	path := Path(baseDir)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
