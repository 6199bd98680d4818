package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Journal Journal `yaml:"journal"`
	World   World   `yaml:"world"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Journal struct {
	// Driver is one of "memory", "sqlite", "postgres".
	Driver string `yaml:"driver"`
	// DSN is the postgres connection string.
	DSN string `yaml:"dsn"`
	// Path is the sqlite database file.
	Path string `yaml:"path"`
}

type World struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Seed       int64  `yaml:"seed"`
	TurnBudget int    `yaml:"turn_budget"`
	LayoutPath string `yaml:"layout_path"`
}

func Default() Config {
	return Config{
		Server:  Server{Addr: ":8080"},
		Journal: Journal{Driver: "memory"},
		World:   World{Width: 5, Height: 5, TurnBudget: 100},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Journal.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown journal driver %q", c.Journal.Driver)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.TurnBudget < 0 {
		return fmt.Errorf("turn budget must not be negative")
	}
	return nil
}
