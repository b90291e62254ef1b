package config

import (
	"fmt"
	"time"

	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/loader"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Loader   LoaderConfig   `yaml:"loader" json:"loader" envPrefix:"LOADER_"`
	Chart    ChartConfig    `yaml:"chart" json:"chart" envPrefix:"CHART_"`
	Carousel CarouselConfig `yaml:"carousel" json:"carousel" envPrefix:"CAROUSEL_"`
	Output   OutputConfig   `yaml:"output" json:"output" envPrefix:"OUTPUT_"`
}

// LoaderConfig configures the loading screen transition
type LoaderConfig struct {
	Tick          time.Duration `yaml:"tick" json:"tick" env:"TICK"`                               // counter tick period
	Step          int           `yaml:"step" json:"step" env:"STEP"`                               // progress added per tick
	BreakDelay    time.Duration `yaml:"break_delay" json:"break_delay" env:"BREAK_DELAY"`          // 100% -> breaking
	ZoomDelay     time.Duration `yaml:"zoom_delay" json:"zoom_delay" env:"ZOOM_DELAY"`             // breaking -> zooming
	CompleteDelay time.Duration `yaml:"complete_delay" json:"complete_delay" env:"COMPLETE_DELAY"` // breaking -> done
	Skip          bool          `yaml:"skip" json:"skip" env:"SKIP"`                               // start on the landing page
}

// ChartConfig configures the embodied carbon chart
type ChartConfig struct {
	DataPath       string `yaml:"data_path" json:"data_path" env:"DATA_PATH"`                   // dataset file; empty uses the sample data
	DefaultType    string `yaml:"default_type" json:"default_type" env:"DEFAULT_TYPE"`          // initial category filter
	DefaultStatus  string `yaml:"default_status" json:"default_status" env:"DEFAULT_STATUS"`    // initial status filter
	ExportFilename string `yaml:"export_filename" json:"export_filename" env:"EXPORT_FILENAME"` // download file name
	ClampBars      bool   `yaml:"clamp_bars" json:"clamp_bars" env:"CLAMP_BARS"`                // cap bars above the scale ceiling
}

// CarouselConfig configures the product carousel
type CarouselConfig struct {
	ToastDuration time.Duration `yaml:"toast_duration" json:"toast_duration" env:"TOAST_DURATION"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format" env:"DEFAULT_FORMAT"` // text|json|csv|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode" env:"COLOR_MODE"`             // auto|always|never
	Theme         string `yaml:"theme" json:"theme" env:"THEME"`                            // default|high-contrast|minimal
	Verbose       bool   `yaml:"verbose" json:"verbose" env:"VERBOSE"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Loader: LoaderConfig{
			Tick:          25 * time.Millisecond,
			Step:          2,
			BreakDelay:    400 * time.Millisecond,
			ZoomDelay:     800 * time.Millisecond,
			CompleteDelay: 2500 * time.Millisecond,
		},
		Chart: ChartConfig{
			DefaultType:    string(chart.CategoryAll),
			DefaultStatus:  string(chart.StatusComplete),
			ExportFilename: chart.DefaultExportName,
			ClampBars:      true,
		},
		Carousel: CarouselConfig{
			ToastDuration: 2 * time.Second,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Theme:         "default",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLoaderConfig(); err != nil {
		return err
	}
	if err := c.validateChartConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if c.Carousel.ToastDuration <= 0 {
		return fmt.Errorf("toast_duration must be greater than 0")
	}
	return nil
}

// validateLoaderConfig validates loader timings
func (c *Config) validateLoaderConfig() error {
	if c.Loader.Tick <= 0 {
		return fmt.Errorf("tick must be greater than 0")
	}
	if c.Loader.Step < 1 || c.Loader.Step > 100 {
		return fmt.Errorf("step must be between 1 and 100")
	}
	if c.Loader.BreakDelay < 0 {
		return fmt.Errorf("break_delay must be non-negative")
	}
	if c.Loader.ZoomDelay < 0 {
		return fmt.Errorf("zoom_delay must be non-negative")
	}
	if c.Loader.CompleteDelay < 0 {
		return fmt.Errorf("complete_delay must be non-negative")
	}
	if c.Loader.ZoomDelay >= c.Loader.CompleteDelay {
		return fmt.Errorf("zoom_delay must be less than complete_delay")
	}
	return nil
}

// validateChartConfig validates the initial filter
func (c *Config) validateChartConfig() error {
	if c.Chart.DefaultType != "" {
		if _, err := chart.ParseCategoryFilter(c.Chart.DefaultType); err != nil {
			return fmt.Errorf("invalid default_type: %w", err)
		}
	}
	if c.Chart.DefaultStatus != "" {
		if _, err := chart.ParseStatus(c.Chart.DefaultStatus); err != nil {
			return fmt.Errorf("invalid default_status: %w", err)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"csv":      true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, csv, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Output.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Output.Theme)
		}
	}
	return nil
}

// InitialFilter returns the configured starting selection, falling back to
// the chart default for unset fields.
func (c *Config) InitialFilter() chart.FilterState {
	filter := chart.DefaultFilter()
	if cat, err := chart.ParseCategoryFilter(c.Chart.DefaultType); err == nil {
		filter.Category = cat
	}
	if st, err := chart.ParseStatus(c.Chart.DefaultStatus); err == nil {
		filter.Status = st
	}
	return filter
}

// LoaderTimings converts the loader section for loader.WithTimings
func (c *Config) LoaderTimings() loader.Timings {
	return loader.Timings{
		Tick:          c.Loader.Tick,
		Step:          c.Loader.Step,
		BreakDelay:    c.Loader.BreakDelay,
		ZoomDelay:     c.Loader.ZoomDelay,
		CompleteDelay: c.Loader.CompleteDelay,
	}
}
