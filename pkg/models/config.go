package models

// Config holds tool-level settings loaded from .p6deltarc (YAML).
// Zero values are replaced with defaults by the configuration manager.
type Config struct {
	// OutputDir is the default directory for generated reports.
	OutputDir string `yaml:"output_dir"`
	// OutputFormat is the default report format: json, md, yaml, or both.
	OutputFormat string `yaml:"output_format"`
	// Scope is the default analysis scope: critical or all.
	Scope Scope `yaml:"scope"`
	// RunLog enables the append-only JSONL audit log of analysis runs.
	RunLog bool `yaml:"run_log"`
	// RunLogPath overrides the default audit log location.
	RunLogPath string `yaml:"run_log_path"`
}
