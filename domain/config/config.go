package config

import (
	"path/filepath"

	"agent-activity/domain/complexity"
	"agent-activity/domain/workload"
)

// Config represents the structure of config.yml used by the tool.
type Config struct {
	DataDir string `yaml:"data_dir" validate:"required"`
	// Input defaults to <data_dir>/ticket_data.csv.
	Input   string `yaml:"input"`
	PushURL string `yaml:"push_url" validate:"omitempty,url"`
	Log     struct {
		Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	} `yaml:"log"`
	Rules  complexity.Rules `yaml:"rules"`
	Policy workload.Policy  `yaml:"policy"`
}

// Default returns the configuration used when no config file exists.
// Policy scalars start at their built-in values so a YAML key, zero included,
// overrides them. Rules and the day adjustments are left empty; consumers fill
// them with WithDefaults so a YAML table replaces the built-in one instead of
// merging into it.
func Default() *Config {
	p := workload.DefaultPolicy()
	p.DayAdjustments = nil
	c := &Config{DataDir: "data", Policy: p}
	c.Log.Level = "info"
	return c
}

// InputPath resolves the ticket export to read.
func (c *Config) InputPath() string {
	if c.Input != "" {
		return c.Input
	}
	return filepath.Join(c.DataDir, "ticket_data.csv")
}
