package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokertrainer-server/internal/util"
	"pokertrainer-server/pkg/puzzle"
	"pokertrainer-server/pkg/table"
)

// Config provides configuration for the poker trainer
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Puzzle puzzle.Options `yaml:"puzzle"`
	Drill  struct {
		NextPuzzleDelay time.Duration `yaml:"nextPuzzleDelay" envconfig:"next_puzzle_delay"`
	} `yaml:"drill"`
	Defaults table.Settings `yaml:"defaults"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides exist
func DefaultConfig() Config {
	cfg := Config{
		MigrationsPath: "./sql",
		Puzzle:         puzzle.DefaultOptions(),
		Defaults: table.Settings{
			GameType:     table.Cash,
			PlayerCount:  6,
			UserPosition: table.BTN,
			BigBlinds:    100,
		},
	}

	cfg.Log.Level = "info"
	cfg.Drill.NextPuzzleDelay = time.Second * 2

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		logrus.WithField("configFile", configFile).Debug("config file not found, using defaults")
	default:
		return err
	}

	if err := envconfig.Process("pt", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate ensures the configuration can run the server
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if err := c.Puzzle.Validate(); err != nil {
		return err
	}

	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	if c.Drill.NextPuzzleDelay < 0 {
		return fmt.Errorf("drill.nextPuzzleDelay must not be negative, got %s", c.Drill.NextPuzzleDelay)
	}

	return nil
}

// LogLevel returns the parsed log level
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
