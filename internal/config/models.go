package config

import (
	"fmt"

	"github.com/voxel51/fiftyone-links/internal/links"
)

// CurrentVersion is the only config file version this package understands.
const CurrentVersion = 1

// Output formats accepted by Preferences.Format.
const (
	FormatTable   = "table"
	FormatCompact = "compact"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Formats lists every supported output format.
var Formats = []string{FormatTable, FormatCompact, FormatJSON, FormatYAML}

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
	Check       *CheckPrefs  `yaml:"check,omitempty"`
}

// Preferences represents output preferences.
type Preferences struct {
	Format string `yaml:"format"` // Default output format for list/show
	Color  bool   `yaml:"color"`  // Styled output when stdout is a terminal
}

// CheckPrefs represents link-check settings.
type CheckPrefs struct {
	AllowedHosts []string `yaml:"allowed_hosts,omitempty"` // Empty means any host
	Aliases      []Alias  `yaml:"aliases,omitempty"`       // Keys that intentionally share a URL
}

// Alias declares that two keys point at the same documentation target on purpose.
type Alias struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Reason string `yaml:"reason,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Preferences: &Preferences{
			Format: FormatTable,
			Color:  true,
		},
		Check: &CheckPrefs{},
	}
}

// applyDefaults fills sections missing from a loaded file.
func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.Preferences == nil {
		c.Preferences = def.Preferences
	}
	if c.Preferences.Format == "" {
		c.Preferences.Format = FormatTable
	}
	if c.Check == nil {
		c.Check = def.Check
	}
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Preferences != nil && !IsFormat(c.Preferences.Format) {
		return fmt.Errorf("unknown output format %q (valid: %v)", c.Preferences.Format, Formats)
	}
	if c.Check != nil {
		for i, a := range c.Check.Aliases {
			if a.First == "" || a.Second == "" {
				return fmt.Errorf("alias %d: both keys are required", i+1)
			}
			for _, k := range []string{a.First, a.Second} {
				if _, ok := links.Lookup(k); !ok {
					return fmt.Errorf("alias %d: unknown link key %q", i+1, k)
				}
			}
		}
	}
	return nil
}

// CheckOptions converts the check settings into options for links.Check.
func (c *Config) CheckOptions() []links.CheckOption {
	var opts []links.CheckOption
	if c.Check == nil {
		return opts
	}
	if len(c.Check.AllowedHosts) > 0 {
		opts = append(opts, links.WithAllowedHosts(c.Check.AllowedHosts...))
	}
	for _, a := range c.Check.Aliases {
		opts = append(opts, links.WithAlias(a.First, a.Second))
	}
	return opts
}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
