package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/p6tools/p6delta/internal/observability"
)

var (
	historySince string
	historyScope string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analysis runs from the audit log",
	Long: `Show the audit trail of past analysis runs: inputs, scope, counts,
and the project delay each run reported.

Optionally restrict to runs after a point in time with --since (e.g.
--since 2026-08-01) or to one scope with --scope.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if RunLog == nil {
			return fmt.Errorf("run log not available (disabled in config)")
		}

		filter := observability.RunFilter{Scope: historyScope}
		if historySince != "" {
			since, err := time.Parse("2006-01-02", historySince)
			if err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
			filter.Since = &since
		}

		events, err := RunLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading run log: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		fmt.Printf("%-20s %-9s %-26s %-26s %8s %8s %14s\n",
			"TIME", "SCOPE", "BASELINE", "UPDATED", "TOTAL", "DELAYED", "PROJECT DELAY")
		for _, e := range events {
			delay := "n/a"
			if e.ProjectDelayDays != nil {
				delay = fmt.Sprintf("%+.1f days", *e.ProjectDelayDays)
			}
			fmt.Printf("%-20s %-9s %-26s %-26s %8d %8d %14s\n",
				e.Time.Format("2006-01-02 15:04:05"),
				e.Scope,
				truncateName(e.BaselineFile, 26),
				truncateName(e.UpdatedFile, 26),
				e.TotalActivities,
				e.DelayedCount,
				delay,
			)
		}

		return nil
	},
}

// truncateName shortens a file name for the fixed-width table.
func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only show runs on or after this date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyScope, "scope", "", "Only show runs with this scope (critical, all)")
	rootCmd.AddCommand(historyCmd)
}
