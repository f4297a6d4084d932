package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional .tcconvert.yaml file. Pointer fields
// distinguish "absent" from zero values so the file only overrides what it
// actually sets.
type fileConfig struct {
	ModuleDelimiter    string   `yaml:"module_delimiter"`
	RepeatCaseFields   *bool    `yaml:"repeat_case_fields"`
	CaseDepthThreshold *int     `yaml:"case_depth_threshold"`
	CaseMarker         *string  `yaml:"case_marker"`
	SuiteName          string   `yaml:"suite_name"`
	IgnoreDirs         []string `yaml:"ignore_dirs"`
	Workers            *int     `yaml:"workers"`
}

// applyFile overlays settings from the given YAML file onto the config.
// A missing file is not an error; invalid YAML is.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if fc.ModuleDelimiter != "" {
		c.ModuleDelimiter = fc.ModuleDelimiter
	}
	if fc.RepeatCaseFields != nil {
		c.RepeatCaseFields = *fc.RepeatCaseFields
	}
	if fc.CaseDepthThreshold != nil && *fc.CaseDepthThreshold > 0 {
		c.CaseDepthThreshold = *fc.CaseDepthThreshold
	}
	if fc.CaseMarker != nil {
		c.CaseMarker = *fc.CaseMarker
	}
	if fc.SuiteName != "" {
		c.SuiteName = fc.SuiteName
	}
	if fc.IgnoreDirs != nil {
		c.IgnoreDirs = fc.IgnoreDirs
	}
	if fc.Workers != nil && *fc.Workers > 0 {
		c.Workers = *fc.Workers
	}
	return nil
}
