package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dash-protocol/dash-go/pkg/request"
	"github.com/dash-protocol/dash-go/pkg/version"
)

// Config holds the dash-decode configuration. Values come from an optional
// YAML file and are then overridden by command-line flags.
type Config struct {
	// BaseURL is the server the printed request URLs point at.
	BaseURL string `yaml:"base_url"`

	// Client names the embedded client manifest requests are built from
	// ("2.2").
	Client string `yaml:"client"`

	// Secret, GameVersion and BinaryVersion override the manifest values
	// when set.
	Secret        string              `yaml:"secret"`
	GameVersion   version.GameVersion `yaml:"game_version"`
	BinaryVersion version.GameVersion `yaml:"binary_version"`

	// ProtocolLog is the path of a CBOR protocol log to write.
	ProtocolLog string `yaml:"protocol_log"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		BaseURL:  request.DefaultServerURL,
		Client:   version.Current,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Client == "" {
		return fmt.Errorf("client must be set")
	}
	return nil
}

// Base builds the request fields every request carries.
func (c Config) Base() (request.BaseRequest, error) {
	base, err := request.LoadBase(c.Client)
	if err != nil {
		return base, err
	}
	if c.Secret != "" {
		base.Secret = c.Secret
	}
	if !c.GameVersion.IsZero() {
		base.GameVersion = c.GameVersion
	}
	if !c.BinaryVersion.IsZero() {
		base.BinaryVersion = c.BinaryVersion
	}
	return base, nil
}

func (c Config) level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
}
