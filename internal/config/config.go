package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env  string `yaml:"env"`
	Game struct {
		Amount       int    `yaml:"amount"`
		Category     int    `yaml:"category"`
		Difficulty   string `yaml:"difficulty"`
		Type         string `yaml:"type"`
		TimerSeconds int    `yaml:"timer_seconds"`
	} `yaml:"game"`
	History struct {
		Path string `yaml:"path"`
	} `yaml:"history"`
	API struct {
		BaseURL     string `yaml:"base_url"`
		CategoryTTL string `yaml:"category_ttl"`
	} `yaml:"api"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Env = "local"
	cfg.Game.Amount = 10
	cfg.Game.Difficulty = "any"
	cfg.Game.Type = "any"
	cfg.Game.TimerSeconds = 30
	cfg.History.Path = "trivia.db"
	return cfg
}

// Load reads YAML config from path. A missing file is not an error;
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
