package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"wayfare/internal/model"
)

// Config is the application's configuration model.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Data    DataConfig    `yaml:"data"`
	Ranking RankingConfig `yaml:"ranking"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	// "sqlite" (pure Go) or "sqlite3" (cgo). If empty, read WAYFARE_DB_DRIVER
	Driver string `yaml:"driver"`
	DBPath string `yaml:"dbPath"`
}

type DataConfig struct {
	CSVPath string `yaml:"csvPath"`
}

type RankingConfig struct {
	DefaultProfile string `yaml:"defaultProfile"`
	// Extra or overriding weight profiles keyed by name
	Profiles map[string]model.Profile `yaml:"profiles,omitempty"`
}

type ServerConfig struct {
	Addr  string  `yaml:"addr"`
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`

	// Serve from an in-memory copy read once at startup
	Snapshot bool `yaml:"snapshot"`
}

type MetricsConfig struct {
	// Empty disables the metrics listener for CLI runs
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{Driver: "sqlite", DBPath: "./travel.db"},
		Data:    DataConfig{CSVPath: "./travel_data.csv"},
		Ranking: RankingConfig{DefaultProfile: "value"},
		Server:  ServerConfig{Addr: ":8080", RPS: 10, Burst: 20},
		Metrics: MetricsConfig{Addr: ""},
		Log:     LogConfig{Level: "info", Format: "json"},
	}
}

// ResolveEnv overrides config fields from environment variables when set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("WAYFARE_DB_PATH"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("WAYFARE_DB_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("WAYFARE_CSV_PATH"); v != "" {
		c.Data.CSVPath = v
	}
	if v := os.Getenv("WAYFARE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("WAYFARE_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.Server.RPS = f
		}
	}
	if v := os.Getenv("WAYFARE_SNAPSHOT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.Snapshot = b
		}
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Load reads YAML config from path on top of Default, so a partial file only
// overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default with env
// overrides applied. The returned bool reports whether the file was found.
func LoadOrDefault(path string) (Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		cfg.ResolveEnv()
		return cfg, false, nil
	}
	return cfg, err == nil, err
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
