package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = ".truthtable.yaml"
	DefaultMaxRows = 1 << 16

	FormatTable = "table"
	FormatCSV   = "csv"
	FormatYAML  = "yaml"

	// Environment variables overriding the config file
	EnvConfigPath = "TRUTHTABLE_CONFIG"
	EnvFormat     = "TRUTHTABLE_FORMAT"
	EnvMaxRows    = "TRUTHTABLE_MAX_ROWS"
)

var formats = []string{FormatTable, FormatCSV, FormatYAML}

type Config struct {
	// How the truth table is printed; table, csv or yaml
	Format string `yaml:"format"`
	// Tables with more rows than this need confirmation before they're
	// printed
	MaxRows uint64 `yaml:"max-rows"`

	Path string `yaml:"-"`
}

// Default returns the config used when no config file exists.
func Default() *Config {
	return &Config{
		Format:  FormatTable,
		MaxRows: DefaultMaxRows,
		Path:    DefaultPath,
	}
}

// LoadConfig reads the yaml config at path. Keys missing from the file keep
// their default values. If the file doesn't exist the returned error
// matches os.ErrNotExist.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", absPath, err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", absPath, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

// Write persists the config to its Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the permissions of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format '%s', expected one of %v", c.Format, formats)
	}
	if c.MaxRows == 0 {
		return fmt.Errorf("max-rows must be positive")
	}
	return nil
}

// ApplyEnv overrides the config with TRUTHTABLE_FORMAT and
// TRUTHTABLE_MAX_ROWS when they are set.
func (c *Config) ApplyEnv() error {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}

	if maxRows := os.Getenv(EnvMaxRows); maxRows != "" {
		n, err := strconv.ParseUint(maxRows, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s '%s': %w", EnvMaxRows, maxRows, err)
		}
		c.MaxRows = n
	}

	return c.Validate()
}

// LoadDotEnv loads environment variables from a .env file, if there is one.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no .env file, skipping", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ResolvePath picks the config file to read: the flag value if given,
// then TRUTHTABLE_CONFIG, then the default.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return DefaultPath
}
