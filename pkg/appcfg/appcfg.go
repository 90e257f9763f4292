package appcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language             string `yaml:"language"`  // "en" | "zh"
	LogLevel             string `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	LogFile              string `yaml:"log_file"`  // may contain {start} and {pid}; empty = console only
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console"`
	Cores                int    `yaml:"cores"`      // default worker count, 0 = all cores
	Output               string `yaml:"output"`     // append-only result log
	Events               string `yaml:"events"`     // "text" | "json"
	BatchSize            int    `yaml:"batch_size"` // attempts per shared counter flush
}

const DefaultOutput = "vanity_wallets.txt"

func Defaults() *Config {
	return &Config{
		Language:             "en",
		LogLevel:             "info",
		HideSecretsInConsole: true,
		Output:               DefaultOutput,
		Events:               "text",
	}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	c := Defaults()
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}

	// defaults
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Events == "" {
		c.Events = "text"
	}
	return c, nil
}
