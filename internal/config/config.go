package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/voxel51/fiftyone-links/internal/logging"
)

const (
	appName    = "fiftyone-links"
	configFile = "config.yaml"
)

// ErrConfigExists is returned by CreateDefaultConfig when a file is already present.
var ErrConfigExists = errors.New("config file already exists")

var (
	// Global config instance (loaded lazily)
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/fiftyone-links or $HOME/.config/fiftyone-links
//   - macOS: $HOME/.config/fiftyone-links
//   - Windows: %LOCALAPPDATA%\fiftyone-links
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
// FIFTYONE_LINKS_CONFIG, when set, takes precedence over the platform default.
func GetConfigPath() (string, error) {
	overrides, err := LoadEnvOverrides()
	if err != nil {
		return "", err
	}
	if overrides.ConfigPath != "" {
		return overrides.ConfigPath, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load loads the configuration from disk.
// If the file doesn't exist, returns a default configuration.
// Thread-safe - multiple calls will return the same instance.
func Load() (*Config, error) {
	globalConfigOnce.Do(func() {
		var path string
		path, globalConfigErr = GetConfigPath()
		if globalConfigErr != nil {
			return
		}
		globalConfig, globalConfigErr = LoadFrom(path)
	})
	return globalConfig, globalConfigErr
}

// Reload discards the cached configuration and reads it again from disk.
func Reload() (*Config, error) {
	fileMutex.Lock()
	globalConfigOnce = sync.Once{}
	fileMutex.Unlock()
	return Load()
}

// LoadFrom reads the configuration at path.
// A missing file yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.LogConfigLoaded(path, false)
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.LogConfigLoaded(path, true)
	return cfg, nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes the configuration as YAML with an explanatory header.
func (c *Config) Marshal(path string) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# fiftyone-links configuration file
# Output preferences and link-check settings. The links themselves are
# compiled into the tool and cannot be changed here.
#
# Location: ` + path + `

`)
	return append(header, data...), nil
}

// SaveTo writes the configuration to path atomically.
func (c *Config) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal(path)
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return c.SaveTo(path)
}

// CreateDefaultConfig writes a default configuration file to path and
// returns ErrConfigExists if one is already there, unless force is set.
func CreateDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	return NewConfig().SaveTo(path)
}

// EffectiveFormat picks the output format: an explicit flag wins, then
// FIFTYONE_LINKS_FORMAT, then the config file.
func (c *Config) EffectiveFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		overrides, err := LoadEnvOverrides()
		if err != nil {
			return "", err
		}
		format = overrides.Format
	}
	if format == "" && c.Preferences != nil {
		format = c.Preferences.Format
	}
	if format == "" {
		format = FormatTable
	}
	if !IsFormat(format) {
		return "", fmt.Errorf("unknown output format %q (valid: %v)", format, Formats)
	}
	return format, nil
}
