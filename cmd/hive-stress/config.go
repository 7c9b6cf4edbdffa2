package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives a stress run. Flags override file values.
type Config struct {
	Duration time.Duration `yaml:"duration"`
	Entities int           `yaml:"entities"`
	Churn    int           `yaml:"churn"`
}

func defaultConfig() Config {
	return Config{
		Duration: 10 * time.Second,
		Entities: 10000,
		Churn:    100,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
