// Package internal provides the App struct that wires the p6delta
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/p6tools/p6delta/internal/cli"
	"github.com/p6tools/p6delta/internal/core"
	"github.com/p6tools/p6delta/internal/delay"
	"github.com/p6tools/p6delta/internal/observability"
	"github.com/p6tools/p6delta/internal/schedule"
	"github.com/p6tools/p6delta/pkg/models"
)

// App holds the service dependencies for one p6delta invocation.
type App struct {
	BasePath string

	ConfigMgr core.ConfigManager
	Config    *models.Config

	Loader     schedule.Loader
	Analyzer   delay.Analyzer
	ImpactCalc delay.ImpactCalculator
	Runner     core.AnalysisRunner

	RunLog observability.RunLog
}

// NewApp creates and wires all components. basePath is where the
// .p6deltarc config and the run log live (P6DELTA_HOME or cwd).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Audit log ---
	if cfg.RunLog {
		logPath := cfg.RunLogPath
		if logPath == "" {
			logPath = filepath.Join(basePath, ".p6delta_runs.jsonl")
		}
		app.RunLog, err = observability.NewJSONLRunLog(logPath)
		if err != nil {
			// Non-fatal: analysis works without the audit trail.
			app.RunLog = nil
		}
	}

	// --- Engine ---
	app.Loader = schedule.NewLoader()
	app.Analyzer = delay.NewAnalyzer(delay.NewAttributor(), delay.NewPropagator())
	app.ImpactCalc = delay.NewImpactCalculator()
	app.Runner = core.NewAnalysisRunner(app.Loader, app.Analyzer, app.ImpactCalc, app.RunLog, stdoutProgress{})

	// --- Wire CLI package-level variables ---
	cli.Runner = app.Runner
	cli.ConfigMgr = app.ConfigMgr
	cli.Config = app.Config
	cli.RunLog = app.RunLog

	return app, nil
}

// Close releases resources held by the App. Safe to call when the run
// log is nil.
func (a *App) Close() error {
	if a.RunLog != nil {
		return a.RunLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for config and the run log.
// P6DELTA_HOME wins; otherwise the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("P6DELTA_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// stdoutProgress prints loader progress lines to stdout.
type stdoutProgress struct{}

func (stdoutProgress) Loaded(what string, count int) {
	fmt.Printf("  Loaded %d %s\n", count, what)
}
