package midi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// Config is the on-disk form of the device configuration surface:
// the announced client name and the saved endpoint selections.
type Config struct {
	ClientName string   `yaml:"client_name"`
	Inputs     []string `yaml:"inputs"`
	Outputs    []string `yaml:"outputs"`
}

// LoadConfig reads a YAML device configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration back as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Options expands the configuration into device options.
func (c *Config) Options() []contracts.Option {
	var opts []contracts.Option
	if c.ClientName != "" {
		opts = append(opts, contracts.WithClientName(c.ClientName))
	}
	if len(c.Inputs) > 0 {
		opts = append(opts, contracts.WithInputs(c.Inputs...))
	}
	if len(c.Outputs) > 0 {
		opts = append(opts, contracts.WithOutputs(c.Outputs...))
	}
	return opts
}
