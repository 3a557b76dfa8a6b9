package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/routecycle/internal/analyzer"
	"github.com/dbsmedya/routecycle/internal/report"
)

var analyzeSummary bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input|->",
	Short: "Find the longest routing cycle, buffering all groups in memory",
	Long: `Analyze reads every routing record, groups edges by
(claim_id, status_code), and reports the group with the longest simple
directed cycle. All groups are held in memory until the input ends, so the
input may arrive in any order.

Use "-" to read standard input.

Example:
  routecycle analyze records.txt
  sort -t'|' -k3,3 -k4,4 records.txt | routecycle analyze -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSummary, "summary", false,
		"Print a human-readable summary after the result line")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	input := args[0]
	log = log.WithInput(input).WithMode("unsorted")
	log.Debugf("starting analysis")

	res, stats, err := analyzer.RunUnsortedPath(input, analyzer.Options{
		Log:           log,
		ProgressEvery: cfg.Processing.ProgressEvery,
	})
	if err != nil {
		return err
	}

	log.Debugf("analysis done: %d groups in %s", stats.Groups, stats.Duration)

	fmt.Fprintln(outputWriter, report.Line(res))
	if analyzeSummary {
		report.WriteSummary(outputWriter, res, stats)
	}
	return nil
}
