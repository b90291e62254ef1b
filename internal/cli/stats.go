package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/stats"
)

var (
	statsMetric     string
	statsOutputFile string
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the managed portfolio statistics",
		Long: `Print the managed portfolio statistic panels: carbon footprint, energy
intensity and energy consumption, each with its change since 2019 and yearly
timeline.

With --metric only that panel is used; with --output-file its timeline is
downloaded as Year,Value CSV.

Examples:
  landing stats
  landing stats --output json
  landing stats --metric intensity --output-file intensity.csv`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().StringVarP(&statsMetric, "metric", "m", "", "metric id (carbon, intensity, consumption)")
	cmd.Flags().StringVarP(&statsOutputFile, "output-file", "f", "", "download the metric timeline as CSV")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	metrics := stats.Portfolio()

	if statsMetric != "" {
		m, ok := stats.Find(metrics, statsMetric)
		if !ok {
			return fmt.Errorf("unknown metric: %s (must be one of: carbon, intensity, consumption)", statsMetric)
		}
		metrics = []stats.Metric{*m}
	}

	if statsOutputFile != "" {
		if len(metrics) != 1 {
			return fmt.Errorf("--output-file requires --metric")
		}
		data, err := metrics[0].Export()
		if err != nil {
			return fmt.Errorf("failed to export metric: %w", err)
		}
		return writeOutput(cmd.OutOrStdout(), data, statsOutputFile)
	}

	f, err := getFormatter()
	if err != nil {
		return err
	}
	output, err := f.FormatStats(metrics)
	if err != nil {
		return fmt.Errorf("failed to format statistics: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), output, "")
}
