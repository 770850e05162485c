package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PROJECTBOARD_"

// Config defines server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" envPrefix:"SERVER_"`
	Transport  TransportConfig  `yaml:"transport" envPrefix:"TRANSPORT_"`
	DB         DBConfig         `yaml:"db" envPrefix:"DB_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Validation ValidationConfig `yaml:"validation" envPrefix:"VALIDATION_"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
}

// TransportConfig selects how the MCP server is exposed: "http" serves the
// board and MCP together, "stdio" serves MCP only.
type TransportConfig struct {
	Mode string `yaml:"mode" env:"MODE"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	Path  string `yaml:"path" env:"PATH"`
}

// ValidationConfig holds submission thresholds. PeopleMax of zero disables
// the upper bound.
type ValidationConfig struct {
	TitleMinLength       int `yaml:"title_min_length" env:"TITLE_MIN_LENGTH"`
	DescriptionMinLength int `yaml:"description_min_length" env:"DESCRIPTION_MIN_LENGTH"`
	PeopleMin            int `yaml:"people_min" env:"PEOPLE_MIN"`
	PeopleMax            int `yaml:"people_max" env:"PEOPLE_MAX"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Validation: ValidationConfig{
			TitleMinLength:       5,
			DescriptionMinLength: 10,
			PeopleMin:            1,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvPrefix + "CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Validation.TitleMinLength < 0 || c.Validation.DescriptionMinLength < 0 {
		return fmt.Errorf("validation lengths must not be negative")
	}
	if c.Validation.PeopleMax != 0 && c.Validation.PeopleMax < c.Validation.PeopleMin {
		return fmt.Errorf("validation people_max %d is below people_min %d", c.Validation.PeopleMax, c.Validation.PeopleMin)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
