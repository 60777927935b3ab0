// Package core contains the configuration layer for p6delta: loading,
// defaulting, and validating the .p6deltarc file.
package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/p6tools/p6delta/pkg/models"
)

// ConfigManager loads and validates tool configuration.
type ConfigManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperConfigManager implements ConfigManager using Viper to read the
// .p6deltarc YAML file from the base path.
type viperConfigManager struct {
	basePath string
}

// NewConfigManager creates a ConfigManager that reads .p6deltarc from
// basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with the tool defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		OutputDir:    ".",
		OutputFormat: "both",
		Scope:        models.ScopeCritical,
		RunLog:       true,
		RunLogPath:   "",
	}
}

// Load reads .p6deltarc from the base path. A missing file yields the
// defaults; a malformed file is an error.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".p6deltarc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("output_format", cfg.OutputFormat)
	v.SetDefault("scope", string(cfg.Scope))
	v.SetDefault("run_log", cfg.RunLog)
	v.SetDefault("run_log_path", cfg.RunLogPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .p6deltarc: %w", err)
	}

	cfg.OutputDir = v.GetString("output_dir")
	cfg.OutputFormat = v.GetString("output_format")
	cfg.Scope = models.Scope(v.GetString("scope"))
	cfg.RunLog = v.GetBool("run_log")
	cfg.RunLogPath = v.GetString("run_log_path")

	return cfg, nil
}

// validFormats is the set of allowed output_format values.
var validFormats = map[string]bool{
	"json": true, "md": true, "yaml": true, "both": true,
}

// Validate checks a Config for invalid field values and returns an
// error listing every problem found.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.OutputDir == "" {
		errs = append(errs, "output_dir must not be empty")
	}

	if !validFormats[cfg.OutputFormat] {
		errs = append(errs, fmt.Sprintf(
			"output_format %q is invalid, must be one of: json, md, yaml, both",
			cfg.OutputFormat,
		))
	}

	if !cfg.Scope.Valid() {
		errs = append(errs, fmt.Sprintf(
			"scope %q is invalid, must be one of: critical, all",
			cfg.Scope,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
