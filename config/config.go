package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the card service
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Port         int    `yaml:"port"`
	AllowOrigins string `yaml:"allow_origins"`
	StaticDir    string `yaml:"static_dir"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig controls card formatting and listing pages.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	PageLimit      int    `yaml:"page_limit"`
	MaxPageLimit   int    `yaml:"max_page_limit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.AllowOrigins == "" {
		// dev defaults
		c.Server.AllowOrigins = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "./static"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "data/shoes.yaml"
	}
	if c.Display.CurrencySymbol == "" {
		c.Display.CurrencySymbol = "$"
	}
	if c.Display.PageLimit == 0 {
		c.Display.PageLimit = 16
	}
	if c.Display.MaxPageLimit == 0 {
		c.Display.MaxPageLimit = 60
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// LoadFromEnv loads .env, then the YAML file at path if it exists, then
// applies environment overrides.
func LoadFromEnv(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if allow := os.Getenv("ALLOW_ORIGINS"); strings.TrimSpace(allow) != "" {
		cfg.Server.AllowOrigins = allow
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}
