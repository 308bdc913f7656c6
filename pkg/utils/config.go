package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gitahub/pkg/database"
)

type Config struct {
	Addr     string        `yaml:"addr"`
	DataPath string        `yaml:"data"`
	DBPath   string        `yaml:"db_path"`
	LogLevel string        `yaml:"log_level"`
	Dev      bool          `yaml:"dev"`
	Arrows   ArrowConfig   `yaml:"arrows"`
	Contact  ContactConfig `yaml:"contact"`
}

type ArrowConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type ContactConfig struct {
	ForwardURL     string        `yaml:"forward_url"`
	ForwardTimeout time.Duration `yaml:"forward_timeout"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DataPath == "" {
		c.DataPath = "data/gita.json"
	}
	if c.DBPath == "" {
		c.DBPath = database.DefaultConfig().Path
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Arrows.Interval <= 0 {
		c.Arrows.Interval = 1500 * time.Millisecond
	}
	if c.Contact.ForwardTimeout <= 0 {
		c.Contact.ForwardTimeout = 10 * time.Second
	}
}

// LoadConfig reads the optional YAML file named by GITAHUB_CONFIG, then
// applies GITAHUB_* environment overrides and fills in dev defaults.
func LoadConfig() (Config, error) {
	cfg := Config{Arrows: ArrowConfig{Enabled: true}}

	if path := os.Getenv("GITAHUB_CONFIG"); path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *fileCfg
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.defaults()
	return cfg, nil
}

// LoadConfigFile reads a YAML config file. Arrows default to enabled
// unless the file says otherwise.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{Arrows: ArrowConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GITAHUB_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GITAHUB_DATA"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("GITAHUB_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("GITAHUB_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("GITAHUB_DEV"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GITAHUB_DEV: %w", err)
		}
		c.Dev = b
	}
	if v := os.Getenv("GITAHUB_ARROWS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GITAHUB_ARROWS: %w", err)
		}
		c.Arrows.Enabled = b
	}
	if v := os.Getenv("GITAHUB_ARROW_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GITAHUB_ARROW_INTERVAL: %w", err)
		}
		c.Arrows.Interval = d
	}
	if v := os.Getenv("GITAHUB_CONTACT_FORWARD_URL"); v != "" {
		c.Contact.ForwardURL = v
	}
	return nil
}
