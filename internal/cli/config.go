package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is picked up from the working directory when --config is
// not passed.
const DefaultConfigFile = "stubgen.yaml"

// Config mirrors the stubgen.yaml document. Flags override config values;
// config values override defaults.
type Config struct {
	Source     string            `yaml:"source"`
	Generator  string            `yaml:"generator"`
	Output     string            `yaml:"output"`
	Namespace  string            `yaml:"namespace"`
	Preset     string            `yaml:"preset,omitempty"`
	Checklist  string            `yaml:"checklist,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Generator: "laravel",
		Output:    "generated",
		Namespace: "App",
	}
}

// loadConfig reads the config file. When path is empty the default file is
// tried; a missing default file is not an error, a missing explicit file is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) merge(source, generator, output, namespace string) Config {
	if source != "" {
		c.Source = source
	}
	if generator != "" {
		c.Generator = generator
	}
	if output != "" {
		c.Output = output
	}
	if namespace != "" {
		c.Namespace = namespace
	}
	return c
}

func writeConfig(path string, cfg Config) error {
	payload, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
