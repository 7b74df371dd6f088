package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# NewsLens configuration
version: "1.0"

# Prediction backend serving POST /predict, GET /model-info and GET /health
server:
  base_url: http://localhost:5000
  # per-request timeout
  timeout: 30s

# Interactive terminal UI
ui:
  # default | high-contrast | minimal
  theme: default
  # below this terminal width the panes stack and new results take focus
  narrow_width: 100
  # how long an error stays on screen before the view resets
  error_timeout: 5s
  # how long the "Copied!" confirmation is shown
  copy_timeout: 2s
  # headlines cycled with ctrl+e
  examples:
    - Senate passes bipartisan infrastructure bill after months of negotiation
    - Top 10 hidden beaches in Portugal you need to visit this summer
    - Award-winning actress announces new streaming series
    - Five morning habits that can improve your mental health
    - This season's must-have accessories according to fashion editors

# One-shot commands (predict, model-info, health, watch)
output:
  # text | json | markdown
  default_format: text
  # auto | always | never
  color_mode: auto
  verbose: false

log:
  # log file used while the TUI owns the terminal; empty discards logs
  file: ""
`
}

// MinimalSampleConfig returns a configuration file with only essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
server:
  base_url: http://localhost:5000
output:
  default_format: text
`
}
