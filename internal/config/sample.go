package config

// SampleConfig returns a fully commented configuration file.
func SampleConfig() string {
	return `# landing configuration
version: "1.0"

# Loading screen transition. zoom_delay and complete_delay are both
# measured from the moment the bar breaks.
loader:
  tick: 25ms
  step: 2
  break_delay: 400ms
  zoom_delay: 800ms
  complete_delay: 2500ms
  skip: false

# Embodied carbon chart
chart:
  # YAML, JSON or CSV file with records; empty uses the built-in sample
  data_path: ""
  default_type: all        # refurbishment | new-build | all
  default_status: complete # complete | estimate
  export_filename: embodied-carbon-emissions.csv
  clamp_bars: true

carousel:
  toast_duration: 2s

output:
  default_format: text # text | json | csv | markdown
  color_mode: auto     # auto | always | never
  theme: default       # default | high-contrast | minimal
  verbose: false
`
}

// MinimalSampleConfig returns a compact configuration with essential settings.
func MinimalSampleConfig() string {
	return `version: "1.0"
chart:
  default_type: all
  default_status: complete
output:
  default_format: text
  theme: default
`
}
