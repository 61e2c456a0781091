// Package config loads the server configuration from YAML, a .env file and
// TOBEBOT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

// Config holds all configuration for tobebot.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DataDir string        `yaml:"data_dir" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
	Lexicon LexiconConfig `yaml:"lexicon"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Port         int    `yaml:"port" validate:"required,min=1,max=65535"`
	BaseURL      string `yaml:"base_url" validate:"omitempty,url"`
	Name         string `yaml:"name" validate:"required,min=1"`
	Version      string `yaml:"version" validate:"required,min=1"`
	Instructions string `yaml:"instructions"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// LexiconConfig extends the embedded word lists.
type LexiconConfig struct {
	ExtraWords       []string `yaml:"extra_words" validate:"dive,required"`
	ExtraNouns       []string `yaml:"extra_nouns" validate:"dive,required"`
	ExtraProperNouns []string `yaml:"extra_proper_nouns" validate:"dive,required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			Name:         "ToBeBot MCP Server",
			Version:      "1.0.0",
			Instructions: "Validates English sentences that use the verb TO BE and explains how to fix them.",
		},
		DataDir: filepath.Join(".", "data"),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Variables from a .env file in the working directory and the
// process environment override file values.
func Load(path string) (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies TOBEBOT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("TOBEBOT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TOBEBOT_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("TOBEBOT_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("TOBEBOT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TOBEBOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("TOBEBOT_LOG_DEVELOPMENT"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TOBEBOT_LOG_DEVELOPMENT %q: %w", v, err)
		}
		c.Logging.Development = dev
	}
	if v := os.Getenv("TOBEBOT_EXTRA_WORDS"); v != "" {
		c.Lexicon.ExtraWords = append(c.Lexicon.ExtraWords, splitList(v)...)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// StatsFile is where outcome statistics are persisted.
func (c *Config) StatsFile() string {
	return filepath.Join(c.DataDir, "stats.json")
}

// ResolvedBaseURL returns the configured base URL or one derived from the port.
func (c *Config) ResolvedBaseURL() string {
	if c.Server.BaseURL != "" {
		return c.Server.BaseURL
	}
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

// LexiconOptions turns the configured extras into lexicon options.
func (c *Config) LexiconOptions() []lexicon.Option {
	var opts []lexicon.Option
	if len(c.Lexicon.ExtraWords) > 0 {
		opts = append(opts, lexicon.WithWords(c.Lexicon.ExtraWords...))
	}
	if len(c.Lexicon.ExtraNouns) > 0 {
		opts = append(opts, lexicon.WithNouns(c.Lexicon.ExtraNouns...))
	}
	if len(c.Lexicon.ExtraProperNouns) > 0 {
		opts = append(opts, lexicon.WithProperNouns(c.Lexicon.ExtraProperNouns...))
	}
	return opts
}
