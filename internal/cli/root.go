// Package cli defines the p6delta command tree. Service dependencies
// are package-level variables wired by internal.NewApp before Execute
// runs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p6tools/p6delta/internal/core"
	"github.com/p6tools/p6delta/internal/observability"
	"github.com/p6tools/p6delta/pkg/models"
)

// Services wired by internal.NewApp.
var (
	Runner    core.AnalysisRunner
	ConfigMgr core.ConfigManager
	Config    *models.Config
	RunLog    observability.RunLog
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "p6delta",
	Short: "Schedule delay analysis for Primavera P6 exports",
	Long: `p6delta compares two versions of a project schedule (a baseline and an
updated snapshot) and reports which activities slipped, whether each slip
originates with the activity itself or a predecessor, and which successors
will be pushed as a result.

It consumes JSON activity exports plus a precomputed critical path and
produces machine-readable (JSON, YAML) and narrative (Markdown) reports.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("p6delta %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
