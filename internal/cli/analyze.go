package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p6tools/p6delta/internal/report"
	"github.com/p6tools/p6delta/pkg/models"
)

var (
	analyzeOutput    string
	analyzeOutputDir string
	analyzeFormat    string
	analyzeScope     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze BASELINE UPDATED CRITICAL_PATH",
	Short: "Compare two schedule snapshots and report delays",
	Long: `Compare a baseline schedule export against an updated one and write a
delay-attribution report.

Each delayed activity is classified as delayed by_itself (no predecessor
slipped on the axis governing its link) or by_predecessor, and its directly
impacted successors are listed. The report also carries the net project
completion delay taken from the critical path's terminal activity.

Scope selects the candidate set: critical (critical-path activities only,
the default) or all (every activity present in both snapshots).`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Runner == nil {
			return fmt.Errorf("analysis runner not initialized")
		}

		scope := models.Scope(analyzeScope)
		if analyzeScope == "" {
			scope = Config.Scope
		}
		if !scope.Valid() {
			return fmt.Errorf("invalid scope %q: must be critical or all", analyzeScope)
		}

		format := report.Format(analyzeFormat)
		if analyzeFormat == "" {
			format = report.Format(Config.OutputFormat)
		}
		if !format.Valid() {
			return fmt.Errorf("invalid format %q: must be json, md, yaml, or both", analyzeFormat)
		}

		outputDir := analyzeOutputDir
		if outputDir == "" {
			outputDir = Config.OutputDir
		}

		rep, err := Runner.Run(args[0], args[1], args[2], scope)
		if err != nil {
			return err
		}

		written, err := report.Write(rep, outputDir, analyzeOutput, format)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Printf("Report written to: %s\n", path)
		}

		fmt.Println()
		printSummary(rep)

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output file prefix (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output-dir", "d", "", "Output directory (default from config, else current directory)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Report format: json, md, yaml, or both (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeScope, "scope", "", "Analysis scope: critical or all (default from config)")
	_ = analyzeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(analyzeCmd)
}
