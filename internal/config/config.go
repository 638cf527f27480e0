// Package config loads lifehub settings from a YAML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lifehub/internal/constants"
)

// Config represents the application configuration.
type Config struct {
	DataDir string        `yaml:"data_dir"`
	Storage string        `yaml:"storage"`
	Debug   bool          `yaml:"debug"`
	Backups BackupsConfig `yaml:"backups"`
}

// BackupsConfig controls the backup directory.
//
// When Auto is set, a backup is taken before commands that replace or
// delete data.
type BackupsConfig struct {
	Max  int  `yaml:"max"`
	Auto bool `yaml:"auto"`
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir: constants.DefaultDataDir,
		Storage: constants.StorageJSON,
		Backups: BackupsConfig{
			Max:  constants.MaxBackups,
			Auto: true,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.Storage, validation.Required, validation.In(constants.StorageJSON, constants.StorageSQLite)),
	); err != nil {
		return err
	}
	return c.Backups.Validate()
}

// Validate validates the backup configuration.
func (c *BackupsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Max, validation.Required, validation.Min(1), validation.Max(1000)),
	)
}

// Load builds the configuration. A missing file is not an error; defaults
// apply. Values from the file may reference environment variables.
func Load(filename string) (*Config, error) {
	_ = godotenv.Load()

	cfg := NewDefaultConfig()
	path := ExpandHome(filename)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.DataDir = ExpandHome(cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(constants.EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(constants.EnvStorage); v != "" {
		cfg.Storage = strings.ToLower(v)
	}
	if v := os.Getenv(constants.EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", constants.EnvDebug, v, err)
		}
		cfg.Debug = debug
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
