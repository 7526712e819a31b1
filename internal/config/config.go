// Package config loads the skill configuration from an optional YAML file
// with environment-variable overrides, validated against the schema below.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type WienerLinienConfig struct {
	MonitorURL  string `yaml:"monitorURL" validate:"required,url"`
	ElevatorURL string `yaml:"elevatorURL" validate:"required,url"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gt=0"`
}

type StadtKatalogConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gt=0"`
	// Blacklist holds entry ids never returned to voice users.
	Blacklist []string `yaml:"blacklist"`
	// VagueTerms are query terms too unspecific to search with.
	VagueTerms []string `yaml:"vagueTerms"`
}

type SkillConfig struct {
	ID string `yaml:"id"`
}

type Config struct {
	Environment  string             `yaml:"environment" validate:"oneof=local development production"`
	LogLevel     string             `yaml:"logLevel"`
	Skill        SkillConfig        `yaml:"skill"`
	WienerLinien WienerLinienConfig `yaml:"wienerlinien"`
	StadtKatalog StadtKatalogConfig `yaml:"stadtkatalog"`
}

func defaults() *Config {
	return &Config{
		Environment: "production",
		LogLevel:    "info",
		WienerLinien: WienerLinienConfig{
			MonitorURL:  "https://www.wienerlinien.at/ogd_realtime/monitor",
			ElevatorURL: "https://www.wienerlinien.at/ogd_realtime/trafficInfoList?name=aufzugsinfo",
			TimeoutMS:   7500,
		},
		StadtKatalog: StadtKatalogConfig{
			BaseURL:    "https://app.stadtkatalog.org/opendata/0.1",
			TimeoutMS:  7500,
			VagueTerms: []string{"seestadt", "aspern"},
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
			log.Debug().Str("path", path).Msg("no config file, using defaults")
		default:
			return nil, err
		}
	}

	cfg.Environment = getEnvOrDefault("ENV", cfg.Environment)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.Skill.ID = getEnvOrDefault("SKILL_ID", cfg.Skill.ID)
	cfg.WienerLinien.MonitorURL = getEnvOrDefault("WIENERLINIEN_MONITOR", cfg.WienerLinien.MonitorURL)
	cfg.WienerLinien.ElevatorURL = getEnvOrDefault("WIENERLINIEN_ELEVATOR", cfg.WienerLinien.ElevatorURL)
	cfg.StadtKatalog.BaseURL = getEnvOrDefault("STADTKATALOG_BASE_URL", cfg.StadtKatalog.BaseURL)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WienerLinienTimeout returns the bounded wait for the real-time feed.
func (c *Config) WienerLinienTimeout() time.Duration {
	return time.Duration(c.WienerLinien.TimeoutMS) * time.Millisecond
}

// StadtKatalogTimeout returns the bounded wait for directory lookups.
func (c *Config) StadtKatalogTimeout() time.Duration {
	return time.Duration(c.StadtKatalog.TimeoutMS) * time.Millisecond
}

// InitializeLogging sets up zerolog according to the configuration.
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
