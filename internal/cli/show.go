package cli

import (
	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/clock"
	"github.com/yildizm/landing/internal/config"
	"github.com/yildizm/landing/internal/stats"
	"github.com/yildizm/landing/internal/ui"
)

var (
	showData       string
	showSkipLoader bool
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the interactive landing page",
		Long: `Open the landing page in a full-screen terminal UI. The loading transition
plays first (press enter to skip), then the page sections appear:

  Portfolio    animated statistic panels
  Emissions    bar chart with type and status filters and CSV download
  Brands       brand selection card
  Collections  product carousel

Use tab to move between sections and q to quit.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showData, "data", "d", "", "dataset file (yaml, json or csv)")
	cmd.Flags().BoolVar(&showSkipLoader, "skip-loader", false, "start on the landing page")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	ds, err := loadDataset(dataPathOrDefault(showData))
	if err != nil {
		return err
	}
	engine, err := buildEngine(ds, "", "")
	if err != nil {
		return err
	}

	opts := uiOptions(cfg, engine)
	opts.SkipLoader = showSkipLoader || cfg.Loader.Skip

	return ui.Run(opts)
}

// uiOptions maps the configuration onto the TUI options
func uiOptions(cfg *config.Config, engine *chart.Engine) ui.Options {
	return ui.Options{
		Clock:         clock.Real(),
		Engine:        engine,
		Metrics:       stats.Portfolio(),
		Timings:       cfg.LoaderTimings(),
		ToastDuration: cfg.Carousel.ToastDuration,
		ExportPath:    cfg.Chart.ExportFilename,
		ClampBars:     cfg.Chart.ClampBars,
		Logger:        newLogger("ui"),
	}
}
