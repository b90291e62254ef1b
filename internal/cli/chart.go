package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	chartType   string
	chartStatus string
	chartData   string
	chartWatch  bool
)

func newChartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the embodied carbon emissions chart",
		Long: `Print the derived chart view: the records matching the type and status
filters with their bar heights on the fixed 0-1200 kgCO2e/m2 scale.

Without --data the built-in sample dataset is used. With --watch the chart is
re-rendered whenever the dataset file changes. Press Ctrl+C to stop watching.

Examples:
  landing chart
  landing chart --type new-build --output json
  landing chart --data emissions.csv --watch`,
		Args: cobra.NoArgs,
		RunE: runChart,
	}

	cmd.Flags().StringVarP(&chartType, "type", "t", "", "building type filter (refurbishment, new-build, all)")
	cmd.Flags().StringVarP(&chartStatus, "status", "s", "", "status filter (complete, estimate)")
	cmd.Flags().StringVarP(&chartData, "data", "d", "", "dataset file (yaml, json or csv)")
	cmd.Flags().BoolVarP(&chartWatch, "watch", "w", false, "re-render when the dataset file changes")

	return cmd
}

func runChart(cmd *cobra.Command, args []string) error {
	path := dataPathOrDefault(chartData)
	out := cmd.OutOrStdout()

	render := func() error {
		ds, err := loadDataset(path)
		if err != nil {
			return err
		}
		engine, err := buildEngine(ds, chartType, chartStatus)
		if err != nil {
			return err
		}
		f, err := getFormatter()
		if err != nil {
			return err
		}
		output, err := f.FormatChart(engine.View())
		if err != nil {
			return fmt.Errorf("failed to format chart: %w", err)
		}
		return writeOutput(out, output, "")
	}

	if err := render(); err != nil {
		return err
	}
	if !chartWatch {
		return nil
	}
	if path == "" {
		return fmt.Errorf("--watch requires a dataset file (--data or chart.data_path)")
	}

	watcher, err := newFileWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger("chart")
	log.Info("Watching %s, press Ctrl+C to stop", path)

	return watcher.Run(ctx, func() {
		if err := render(); err != nil {
			log.Warn("Failed to render chart: %v", err)
		}
	})
}
