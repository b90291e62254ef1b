package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/config"
	"github.com/yildizm/landing/internal/emoji"
	"gopkg.in/yaml.v3"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage landing configuration",
		Long: `Manage landing configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	// Add subcommands
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new landing configuration file with default values.

By default, creates a full configuration file with all options and comments.
Use --minimal for a compact configuration with only essential settings.`,
		Example: `  # Create full config in current directory
  landing config init

  # Create minimal config
  landing config init --minimal

  # Create config at specific path
  landing config init --path ~/.config/landing/config.yaml

  # Overwrite existing config
  landing config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Determine output path
			if outputPath == "" {
				outputPath = ".landing.yaml"
			}
			if strings.HasPrefix(outputPath, "~/") {
				if home, err := os.UserHomeDir(); err == nil {
					outputPath = filepath.Join(home, outputPath[2:])
				}
			}

			// Check if file exists and not forcing
			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			// Create directory if needed
			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			// Get config content
			var content string
			if minimal {
				content = config.MinimalSampleConfig()
			} else {
				content = config.SampleConfig()
			}

			// Write config file
			if err := atomic.WriteFile(outputPath, strings.NewReader(content)); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Fprintf(out, "%s Configuration file created at: %s\n", emoji.GetEmoji("success"), outputPath)
			if minimal {
				fmt.Fprintf(out, "%s Created minimal configuration with essential settings\n", emoji.GetEmoji("file"))
			} else {
				fmt.Fprintf(out, "%s Created full configuration with all options and documentation\n", emoji.GetEmoji("file"))
			}

			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "path", "p", "", "output path for config file (default: .landing.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration after loading from all sources.

Shows the merged configuration from all sources including defaults,
config files, and environment variable overrides.`,
		Example: `  # Show config in YAML format
  landing config show

  # Show config in JSON format
  landing config show --format json

  # Show config from specific file
  landing config show --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Format and display configuration
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config to YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}

			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate a landing configuration file for syntax and semantic errors.

Checks the configuration file for:
- Valid YAML syntax
- Positive loader timings
- Valid filter, format, color mode and theme values`,
		Example: `  # Validate current config
  landing config validate

  # Validate specific config file
  landing config validate --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Load configuration
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n", emoji.GetEmoji("error"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			// If we get here, validation passed
			fmt.Fprintf(out, "%s Configuration is valid\n", emoji.GetEmoji("success"))

			// Show some basic info about the config
			filter := cfg.InitialFilter()
			dataPath := cfg.Chart.DataPath
			if dataPath == "" {
				dataPath = "(sample data)"
			}
			fmt.Fprintf(out, "%s Configuration summary:\n", emoji.GetEmoji("chart"))
			fmt.Fprintf(out, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(out, "   Loader: tick %s, step %d\n", cfg.Loader.Tick, cfg.Loader.Step)
			fmt.Fprintf(out, "   Chart filter: %s / %s\n", filter.Category.Label(), filter.Status.Label())
			fmt.Fprintf(out, "   Dataset: %s\n", dataPath)
			fmt.Fprintf(out, "   Output Format: %s\n", cfg.Output.DefaultFormat)

			return nil
		},
	}

	return validateCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the list of paths landing searches for configuration files.

Shows the search order and indicates which files exist.`,
		Example: `  # Show config search paths
  landing config path`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file search paths (in priority order):\n\n", emoji.GetEmoji("folder"))

			paths := config.GetConfigPaths()
			priority := []string{"Highest", "Medium", "Lowest"}
			for i, path := range paths {
				exists := " " + emoji.GetEmoji("error") + " (not found)"
				if fileExists(path) {
					exists = " " + emoji.GetEmoji("success") + " (exists)"
				}

				fmt.Fprintf(out, "  %d. %s%s\n", i+1, path, exists)
				if i < len(priority) {
					fmt.Fprintf(out, "     Priority: %s\n", priority[i])
				}
				fmt.Fprintln(out)
			}

			// Show current config file being used
			if currentConfig, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "%s Current config file: %s\n", emoji.GetEmoji("target"), currentConfig)
			} else {
				fmt.Fprintf(out, "%s No config file found, using defaults\n", emoji.GetEmoji("file"))
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s Environment variables with %s prefix will override file settings\n", emoji.GetEmoji("help"), config.EnvPrefix)
		},
	}

	return pathCmd
}
