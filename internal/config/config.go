// ABOUTME: Config loading from YAML with global + project merge
// ABOUTME: Unknown keys are rejected; CLI flags are layered on top by the caller

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the merged settings for a run.
type Config struct {
	Tests         []string `yaml:"tests,omitempty"`
	Phrases       []string `yaml:"phrases,omitempty"`
	NoColor       bool     `yaml:"no_color,omitempty"`
	UnicodeBox    bool     `yaml:"unicode_box,omitempty"`
	SizeProvider  string   `yaml:"size_provider,omitempty"`
	Theme         string   `yaml:"theme,omitempty"`
	AllowOverlong bool     `yaml:"allow_overlong,omitempty"`
	LogFile       string   `yaml:"log_file,omitempty"`
	Verbose       bool     `yaml:"verbose,omitempty"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Config {
	return &Config{SizeProvider: "ioctl", Theme: "default"}
}

// Load builds the effective config. An explicit path is the only file read
// and must exist. Otherwise the global file and the project file in
// projectRoot are merged, project winning; either may be absent. An empty
// projectRoot skips the project file.
func Load(explicit, projectRoot string) (*Config, error) {
	var merged *Config
	if explicit != "" {
		c, err := loadFile(explicit)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		merged = merge(Defaults(), c)
	} else {
		global, err := loadFile(GlobalConfigFile())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
		var project *Config
		if projectRoot != "" {
			project, err = loadFile(ProjectConfigFile(projectRoot))
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading project config: %w", err)
			}
		}
		merged = merge(merge(Defaults(), global), project)
	}
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads a Config from a YAML file. An empty file yields a zero Config.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// merge overlays non-zero fields of over onto base. Lists replace rather than
// append, so a project can narrow the strategies a user enabled globally.
func merge(base, over *Config) *Config {
	if base == nil {
		base = &Config{}
	}
	result := *base
	if over == nil {
		return &result
	}

	if len(over.Tests) > 0 {
		result.Tests = append([]string(nil), over.Tests...)
	}
	if len(over.Phrases) > 0 {
		result.Phrases = append([]string(nil), over.Phrases...)
	}
	if over.NoColor {
		result.NoColor = true
	}
	if over.UnicodeBox {
		result.UnicodeBox = true
	}
	if over.SizeProvider != "" {
		result.SizeProvider = over.SizeProvider
	}
	if over.Theme != "" {
		result.Theme = over.Theme
	}
	if over.AllowOverlong {
		result.AllowOverlong = true
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.Verbose {
		result.Verbose = true
	}
	return &result
}
