package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFunction = "dottie"
	DefaultMethod   = "cubic"
	DefaultSteps    = 8
	DefaultBackend  = "float64"
	DefaultPrec     = 256
)

// Config collects one solver run. An empty X0 means the function's own
// conventional starting point; Prec only matters for the big backend.
type Config struct {
	Function string `yaml:"function"`
	Method   string `yaml:"method"`
	X0       string `yaml:"x0"`
	Steps    int    `yaml:"steps"`
	Backend  string `yaml:"backend"`
	Prec     uint   `yaml:"prec"`
}

func DefaultConfig() *Config {
	return &Config{
		Function: DefaultFunction,
		Method:   DefaultMethod,
		Steps:    DefaultSteps,
		Backend:  DefaultBackend,
		Prec:     DefaultPrec,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
