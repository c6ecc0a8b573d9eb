package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voxel51/fiftyone-links/internal/config"
	"github.com/voxel51/fiftyone-links/internal/export"
	"github.com/voxel51/fiftyone-links/internal/links"
	"github.com/voxel51/fiftyone-links/internal/logging"
	"github.com/voxel51/fiftyone-links/internal/ui"
	"github.com/voxel51/fiftyone-links/internal/version"
)

// errCheckFailed is returned by check when any link has a problem.
// The details have already been printed.
var errCheckFailed = errors.New("link check failed")

// app holds the global flags and the configuration shared by all commands.
type app struct {
	format     string
	noColor    bool
	configPath string
	sortKeys   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fiftyone-links",
		Short: "FiftyOne documentation link registry",
		Long: `Inspect the documentation links shown by the FiftyOne App.

Lists and shows links, checks them offline for malformed or duplicate
entries, exports them for link-checking tooling, and offers an interactive
browser.

If no command is specified, all links are listed.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: a.runList,
	}

	// Disable automatic completion command generation
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.format, "format", "", "Output format (table, compact, json, yaml)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable styled output")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: platform config dir)")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.checkCmd(),
		a.exportCmd(),
		a.browseCmd(),
		a.configCmd(),
		versionCmd(),
	)

	return root
}

// setup initializes logging and loads configuration before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	logging.LogCommand(cmd.CommandPath(), args)

	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFrom(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		// A broken file must not stop 'config init --force' from replacing it
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			logging.Warn("Ignoring unreadable config", zap.Error(err))
			a.cfg = config.NewConfig()
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// printer returns a Printer for the command's output, styled only for
// terminals with color enabled.
func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	out := cmd.OutOrStdout()
	color := !a.noColor && a.cfg.Preferences.Color
	return ui.NewPrinter(out, ui.StyledOutput(out, color))
}

func (a *app) outputFormat() (string, error) {
	return a.cfg.EffectiveFormat(a.format)
}

// listCmd prints every link
func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all documentation links",
		Long: `List every documentation link in the registry.

Links are printed in declaration order unless --sort is given.`,
		Example: `  # Aligned table (default)
  fiftyone-links list

  # One "KEY url" per line for scripting
  fiftyone-links list --format compact

  # Sorted JSON
  fiftyone-links list --format json --sort`,
		Args: cobra.NoArgs,
		RunE: a.runList,
	}

	cmd.Flags().BoolVar(&a.sortKeys, "sort", false, "Sort by key instead of declaration order")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	entries := links.All()
	if a.sortKeys {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	}

	p := a.printer(cmd)
	switch format {
	case config.FormatCompact:
		p.PrintCompact(entries)
	case config.FormatJSON, config.FormatYAML:
		return export.Encode(p.Writer(), format, entries)
	default:
		p.PrintTable(entries)
	}
	return nil
}

// showCmd prints a single link
func (a *app) showCmd() *cobra.Command {
	var urlOnly bool

	cmd := &cobra.Command{
		Use:   "show KEY",
		Short: "Show one documentation link",
		Long: `Show a single documentation link.

KEY is matched case-insensitively, and '-', '.' or spaces may stand in for
underscores, so "qp-mode" and "QP_MODE" name the same link.`,
		Example: `  # Details for a link
  fiftyone-links show QP_MODE

  # Just the URL, e.g. for xdg-open
  xdg-open "$(fiftyone-links show sort-by-similarity --url)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := links.Get(args[0])
			if !ok {
				return unknownKeyError(args[0])
			}

			if urlOnly {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), e.URL)
				return err
			}

			format, err := a.outputFormat()
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			switch format {
			case config.FormatCompact:
				p.Println(e.String())
			case config.FormatJSON, config.FormatYAML:
				return export.EncodeEntry(p.Writer(), format, e)
			default:
				p.PrintEntry(e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&urlOnly, "url", false, "Print only the URL")
	return cmd
}

// unknownKeyError builds a "did you mean" error for a key not in the registry.
func unknownKeyError(key string) error {
	if suggestions := links.Suggest(key); len(suggestions) > 0 {
		return fmt.Errorf("unknown link %q (did you mean: %s?)", key, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown link %q (run 'fiftyone-links list' to see all keys)", key)
}

// checkCmd validates links offline
func (a *app) checkCmd() *cobra.Command {
	var (
		allowHosts []string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check links for malformed or duplicate entries",
		Long: `Check documentation links without fetching them.

Every link must be an absolute https URL with a host. Keys must be unique,
and two keys may only share a URL when declared as an alias in the config
file. With --allow-host (or check.allowed_hosts in the config file), links
must also point at one of the listed hosts.

By default the built-in registry is checked; --file checks an exported
JSON or YAML document instead. Exits non-zero when any problem is found.`,
		Example: `  # Check the built-in registry
  fiftyone-links check

  # Restrict hosts
  fiftyone-links check --allow-host docs.voxel51.com --allow-host plotly.com

  # Check an exported document
  fiftyone-links check --file links.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := links.All()
			source := "built-in registry"
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read links document: %w", err)
				}
				doc, err := export.Decode(data)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				entries = doc.Links
				source = file
			}

			opts := a.cfg.CheckOptions()
			hosts := append([]string(nil), a.cfg.Check.AllowedHosts...)
			if len(allowHosts) > 0 {
				opts = append(opts, links.WithAllowedHosts(allowHosts...))
				hosts = append(hosts, allowHosts...)
			}

			hostsDesc := "any"
			if len(hosts) > 0 {
				hostsDesc = strings.Join(hosts, ", ")
			}

			p := a.printer(cmd)
			p.PrintHeader(ui.NewHeader("Link Check", cmd.CommandPath(), map[string]string{
				"Source":        source,
				"Links":         fmt.Sprintf("%d", len(entries)),
				"Allowed hosts": hostsDesc,
				"Aliases":       fmt.Sprintf("%d", len(a.cfg.Check.Aliases)),
			}))

			report := links.Check(entries, opts...)
			logging.LogCheckResult(report)
			p.PrintResult(ui.CheckResult(report))

			if !report.OK() {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&allowHosts, "allow-host", nil, "Host links may point to (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "Check an exported links document instead of the built-in registry")
	return cmd
}

// exportCmd writes the registry as a document
func (a *app) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export links as JSON or YAML",
		Long: `Export the registry as a versioned JSON or YAML document for
documentation or link-checking tooling.

The format defaults to YAML; pass --format json for JSON.`,
		Example: `  # YAML to stdout
  fiftyone-links export

  # JSON to a file
  fiftyone-links export --format json --output links.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.format
			if format == "" {
				format = config.FormatYAML
			}
			if format != config.FormatJSON && format != config.FormatYAML {
				return fmt.Errorf("export supports json or yaml, got %q", format)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := export.Encode(w, format, links.All()); err != nil {
				return err
			}

			if output != "" {
				logging.Info("Links exported",
					zap.String("path", output),
					zap.String("format", format),
					zap.Int("links", links.Len()),
				)
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d links to %s\n", links.Len(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

// browseCmd launches the interactive browser
func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse links interactively",
		Long: `Browse documentation links in an interactive, filterable list.

Press / to filter, enter to print the selected URL, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ui.IsTerminal(cmd.InOrStdin()) || !ui.IsTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("browse needs an interactive terminal; use 'fiftyone-links list' instead")
			}

			selected, err := ui.RunBrowser(links.All(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if selected == nil {
				return nil
			}

			logging.Debug("Link selected", zap.String("key", selected.Key))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), selected.URL)
			return err
		},
	}
}

// configCmd manages the config file
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveConfigPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a configuration file with default settings.

If a file already exists you are asked before it is overwritten; pass
--force to overwrite without asking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveConfigPath()
			if err != nil {
				return err
			}

			err = config.CreateDefaultConfig(path, force)
			if errors.Is(err, config.ErrConfigExists) {
				p := a.printer(cmd)
				if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite "+path+"?", p.Styled()) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
					return nil
				}
				err = config.CreateDefaultConfig(path, true)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(pathCmd, initCmd)
	return cmd
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return filepath.Clean(a.configPath), nil
	}
	return config.GetConfigPath()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "fiftyone-links %s %s\n", version.Full(), version.Platform())
			return err
		},
	}
}
