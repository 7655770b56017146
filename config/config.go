// Package config loads toolkit-wide defaults from a YAML file.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the toolkit defaults.
type Config struct {
	// Caching is the default caching mode for output connectors.
	Caching bool `yaml:"caching"`
	// Debug enables debug logging of connection and propagation events.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in defaults: caching on, debug off.
func Default() Config {
	return Config{Caching: true}
}

// Load reads a config file, filling missing keys with defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
