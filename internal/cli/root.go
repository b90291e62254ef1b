package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/config"
	"github.com/yildizm/landing/internal/emoji"
	"github.com/yildizm/landing/internal/logger"
	"github.com/yildizm/landing/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "landing",
		Short: "Embodied carbon landing page for the terminal",
		Long: `Landing renders the embodied carbon landing page in your terminal: a loading
transition, the managed portfolio statistics, a filterable emissions chart
with CSV download, the brand card and the product carousel.

Run "landing show" for the interactive page, or use the chart, export and
stats commands for scriptable output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)

			// Config subcommands report load errors themselves
			if isConfigCommand(cmd) {
				globalConfig = nil
				return nil
			}
			return loadGlobalConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, csv, markdown)")

	// Add subcommands
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newLoaderCommand())
	rootCmd.AddCommand(newChartCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Landing %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// loadGlobalConfig loads the configuration and lets it fill in flags the
// user did not set.
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	globalConfig = cfg

	if flag := cmd.Flag("output"); flag != nil && !flag.Changed && cfg.Output.DefaultFormat != "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if cfg.Output.Verbose {
		verbose = true
	}
	if cfg.Output.ColorMode == "never" {
		noColor = true
	}

	ui.SetColorDisabled(noColor)
	if cfg.Output.Theme != "" && !ui.SetThemeByName(cfg.Output.Theme) {
		newLogger("cli").Warn("Unknown theme %q, using default", cfg.Output.Theme)
	}

	newLogger("cli").DebugWithFields("Configuration loaded", []logger.Field{
		logger.F("output", outputFmt),
		logger.F("theme", cfg.Output.Theme),
	})
	return nil
}

// GetGlobalConfig returns the loaded configuration, or the defaults when
// none was loaded.
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	return outputFmt
}

func isEmojiDisabled() bool {
	return noEmoji
}

// isColorEnabled reports whether text output should be colored
func isColorEnabled() bool {
	if noColor {
		return false
	}
	if GetGlobalConfig().Output.ColorMode == "always" {
		return true
	}
	return !ui.IsColorDisabled()
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}
