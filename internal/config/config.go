package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config is the global application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Cloud     CloudConfig     `yaml:"cloud"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// DatabaseConfig holds the MySQL connection string.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// RedisConfig backs the STS credential cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CloudConfig controls AWS region selection and the mock/live client toggle.
type CloudConfig struct {
	Region string `yaml:"region"` // fallback us-east-1
	Mock   bool   `yaml:"mock"`   // mock-mode toggle
}

// SchedulerConfig controls the engine tick cadence.
type SchedulerConfig struct {
	CronExpr string `yaml:"cron"` // default "*/1 * * * *"
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Port int    `yaml:"port"` // default 4000
	Mode string `yaml:"mode"` // debug, release
}

// LoggerConfig mirrors the teacher's logger configuration surface.
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

const (
	defaultRegion   = "us-east-1"
	defaultCronExpr = "*/1 * * * *"
	defaultPort     = 4000
)

// Init reads CONFIG_PATH (default "config/config.yaml"), unmarshals it into
// GlobalConfig, and applies defaults for anything left unset.
func Init() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	applyDefaults(&cfg)

	GlobalConfig = &cfg
	return nil
}

// applyDefaults fills in the fallbacks spelled out in the external
// interfaces surface: region, cron expression, and HTTP port.
func applyDefaults(cfg *Config) {
	if cfg.Cloud.Region == "" {
		cfg.Cloud.Region = defaultRegion
	}
	if cfg.Scheduler.CronExpr == "" {
		cfg.Scheduler.CronExpr = defaultCronExpr
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Output == "" {
		cfg.Logger.Output = "console"
	}
}
