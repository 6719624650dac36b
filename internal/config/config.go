// Package config loads server settings from an optional YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Server holds the serve command's settings. Flags override file values.
type Server struct {
	Addr        string `yaml:"addr"`
	PersistPath string `yaml:"persistPath"`
	LogLevel    string `yaml:"logLevel"`
}

// Default returns the built-in settings.
func Default() Server {
	return Server{Addr: ":8080", PersistPath: "./data", LogLevel: "info"}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}
