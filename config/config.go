// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jongio/browser-core/browsers"
)

// Environment variable names.
const (
	// EnvConfig overrides the config file location.
	EnvConfig = "BROWSERCORE_CONFIG"
)

// defaultFileName is looked up under the user config directory
// (e.g. ~/.config/browsercore on Linux).
const defaultFileName = "browsers.yaml"

// Duration wraps time.Duration with YAML support for strings like "3s".
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config holds the optional discovery defaults the CLI applies before its
// own flags. The library never reads a config file itself.
type Config struct {
	// TypePattern is the default type/display-name pattern.
	TypePattern string `yaml:"typePattern"`
	// VersionPattern is the default version pattern.
	VersionPattern string `yaml:"versionPattern"`
	// ExcludePattern drops browsers whose type matches it.
	ExcludePattern string `yaml:"excludePattern"`
	// ProbeTimeout bounds each version probe during Linux discovery.
	ProbeTimeout Duration `yaml:"probeTimeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TypePattern:    "*",
		VersionPattern: "*",
		ExcludePattern: "",
		ProbeTimeout:   Duration(browsers.DefaultProbeTimeout),
	}
}

// Load reads the configuration from BROWSERCORE_CONFIG if set, otherwise
// from browsers.yaml under the user config directory. A missing file is not
// an error; defaults are returned.
func Load() (Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(configDir, "browsercore", defaultFileName)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. Unset fields keep
// their defaults; an unreadable or malformed file is an error.
func LoadFrom(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TypePattern == "" {
		cfg.TypePattern = "*"
	}
	if cfg.VersionPattern == "" {
		cfg.VersionPattern = "*"
	}
	return cfg, nil
}

// Finder builds a browsers.Finder configured from c.
func (c Config) Finder() browsers.Finder {
	return browsers.NewFinder().
		WithType(c.TypePattern).
		WithVersion(c.VersionPattern).
		ExcludeType(c.ExcludePattern).
		WithProbeTimeout(time.Duration(c.ProbeTimeout))
}
