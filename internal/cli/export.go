package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/emoji"
)

var (
	exportData       string
	exportOutputFile string
	exportDownload   bool
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the chart dataset as CSV",
		Long: `Write the full, unfiltered chart dataset as CSV with a Value,Type,Status
header. Filters never affect the export.

The file is written atomically. Without --output-file or --download the CSV
goes to stdout.

Examples:
  landing export
  landing export --download
  landing export --data emissions.yaml --output-file out.csv`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportData, "data", "d", "", "dataset file (yaml, json or csv)")
	cmd.Flags().StringVarP(&exportOutputFile, "output-file", "f", "", "write the CSV to this file")
	cmd.Flags().BoolVar(&exportDownload, "download", false, "write to the configured export filename (chart.export_filename)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(dataPathOrDefault(exportData))
	if err != nil {
		return err
	}

	data, err := chart.Export(ds)
	if err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}

	path := exportOutputFile
	if path == "" && exportDownload {
		path = GetGlobalConfig().Chart.ExportFilename
	}
	if err := writeOutput(cmd.OutOrStdout(), data, path); err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Exported %d records to %s\n", emoji.GetEmoji("download"), ds.Len(), path)
	}
	return nil
}
