package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr     = "127.0.0.1:8080"
	defaultLogLevel = "info"
)

// ServerConfig drives the serve command: where to listen and which
// dictionaries to preload into the lexicon before accepting requests.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address (host:port)

	// dictionary files loaded at startup, one word per line
	Dictionaries []string `yaml:"dictionaries,omitempty"`

	// AssumeLowercase promises the dictionaries are already lowercase,
	// which lets the loader skip per-word case mapping. A wrong promise
	// fails the load, it never corrupts the set.
	AssumeLowercase bool `yaml:"assume-lowercase"`

	LogLevel string `yaml:"log-level"` // zerolog level name
}

// Default returns a config with every field at its default.
func Default() *ServerConfig {
	return &ServerConfig{
		Addr:     defaultAddr,
		LogLevel: defaultLogLevel,
	}
}

// Load reads a YAML config file over the defaults, so absent keys keep
// their default values.
func Load(path string) (*ServerConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
