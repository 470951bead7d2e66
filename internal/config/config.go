package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Auth      AuthConfig      `yaml:"auth"`
	Scan      ScanConfig      `yaml:"scan"`
	Insights  InsightsConfig  `yaml:"insights"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type TransportConfig struct {
	// Mode is "stdio" or "http".
	Mode string `yaml:"mode"`
}

type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// ScanConfig controls event detection and the notification feed.
type ScanConfig struct {
	// Schedule is a 5-field cron expression for background rescans. Empty disables them.
	Schedule string `yaml:"schedule"`
	// Timezone is an IANA zone name used for day boundaries. Empty means local time.
	Timezone string `yaml:"timezone"`
	// HonorExplicitYear applies a 4-digit year found after a month-name date
	// instead of always using the current year.
	HonorExplicitYear bool `yaml:"honor_explicit_year"`
	// UpcomingLimit caps how many upcoming events the feed view returns.
	UpcomingLimit int `yaml:"upcoming_limit"`
}

type InsightsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("NOTEFLOW_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("NOTEFLOW_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("NOTEFLOW_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEFLOW_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("NOTEFLOW_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("NOTEFLOW_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("NOTEFLOW_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := os.Getenv("NOTEFLOW_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if enabled := os.Getenv("NOTEFLOW_AUTH_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEFLOW_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = v
	}
	if token := os.Getenv("NOTEFLOW_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if schedule := os.Getenv("NOTEFLOW_SCAN_SCHEDULE"); schedule != "" {
		cfg.Scan.Schedule = schedule
	}
	if tz := os.Getenv("NOTEFLOW_TIMEZONE"); tz != "" {
		cfg.Scan.Timezone = tz
	}
	if honor := os.Getenv("NOTEFLOW_SCAN_HONOR_EXPLICIT_YEAR"); honor != "" {
		v, err := strconv.ParseBool(honor)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEFLOW_SCAN_HONOR_EXPLICIT_YEAR: %w", err)
		}
		cfg.Scan.HonorExplicitYear = v
	}
	if limit := os.Getenv("NOTEFLOW_SCAN_UPCOMING_LIMIT"); limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEFLOW_SCAN_UPCOMING_LIMIT: %w", err)
		}
		cfg.Scan.UpcomingLimit = v
	}
	if enabled := os.Getenv("NOTEFLOW_INSIGHTS_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTEFLOW_INSIGHTS_ENABLED: %w", err)
		}
		cfg.Insights.Enabled = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "noteflow.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Scan: ScanConfig{
			UpcomingLimit: 10,
		},
		Insights: InsightsConfig{
			Enabled: true,
		},
	}
}

// Validate checks values that cannot be corrected later.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	if c.Auth.Enabled && c.Auth.Token == "" {
		return fmt.Errorf("auth enabled but no token configured")
	}
	if c.Scan.UpcomingLimit < 0 {
		return fmt.Errorf("scan upcoming_limit must not be negative")
	}
	if _, err := c.Scan.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (s ScanConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scan timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
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
