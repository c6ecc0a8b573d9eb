// Package config provides user configuration for the fiftyone-links CLI.
//
// The configuration is a small, versioned YAML file holding output
// preferences and link-check settings: the hosts links may point to and the
// key pairs that intentionally share a URL. The registry of links itself is
// compiled in and never read from this file.
//
// # Configuration File Location
//
// The file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/fiftyone-links/config.yaml or $HOME/.config/fiftyone-links/config.yaml
//   - macOS: $HOME/.config/fiftyone-links/config.yaml
//   - Windows: %LOCALAPPDATA%\fiftyone-links\config.yaml
//
// FIFTYONE_LINKS_CONFIG overrides the path, and FIFTYONE_LINKS_FORMAT
// overrides the preferred output format.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report := links.Check(links.All(), cfg.CheckOptions()...)
//
// # Thread Safety
//
// The global configuration uses sync.Once for safe initialization across
// goroutines. File writes are protected by a mutex and are atomic.
package config
