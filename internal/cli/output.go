package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/dataset"
	"github.com/yildizm/landing/internal/formatter"
	"github.com/yildizm/landing/internal/logger"
)

// getFormatter returns the formatter for the active output format
func getFormatter() (formatter.Formatter, error) {
	return formatter.New(getOutputFormat(), formatter.Options{
		Color:     isColorEnabled(),
		Emoji:     !isEmojiDisabled(),
		ClampBars: GetGlobalConfig().Chart.ClampBars,
	})
}

// dataPathOrDefault returns the flag value, falling back to the configured path.
func dataPathOrDefault(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return GetGlobalConfig().Chart.DataPath
}

// loadDataset loads a dataset file, or the sample data when path is empty
func loadDataset(path string) (chart.Dataset, error) {
	if path == "" {
		return chart.SampleDataset(), nil
	}
	if err := validateFilePath(path); err != nil {
		return chart.Dataset{}, fmt.Errorf("invalid data file: %w", err)
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return chart.Dataset{}, err
	}

	newLogger("data").DebugWithFields("Dataset loaded", []logger.Field{
		logger.F("path", path),
		logger.Count(ds.Len()),
	})
	return ds, nil
}

// buildEngine creates a chart engine over the dataset with the configured
// filter, then applies any non-empty flag overrides.
func buildEngine(ds chart.Dataset, category, status string) (*chart.Engine, error) {
	engine := chart.NewEngine(ds)

	initial := GetGlobalConfig().InitialFilter()
	engine.SetCategory(initial.Category)
	engine.SetStatus(initial.Status)

	if category != "" {
		if err := engine.SetFilter(chart.DimensionCategory, category); err != nil {
			return nil, err
		}
	}
	if status != "" {
		if err := engine.SetFilter(chart.DimensionStatus, status); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

// writeOutput writes output to path atomically, or to w when path is empty
func writeOutput(w io.Writer, output []byte, path string) error {
	if path == "" {
		_, err := w.Write(output)
		return err
	}

	if err := validateOutputFilePath(path); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := atomic.WriteFile(filepath.Clean(path), bytes.NewReader(output)); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	newLogger("cli").Info("Output saved to: %s", path)
	return nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

func validateOutputFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// fileExists reports whether a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
