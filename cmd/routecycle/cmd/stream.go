package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/routecycle/internal/analyzer"
	"github.com/dbsmedya/routecycle/internal/report"
)

var (
	streamCheckOrder bool
	streamSummary    bool
)

var streamCmd = &cobra.Command{
	Use:   "stream <input|->",
	Short: "Find the longest routing cycle over input sorted by group key",
	Long: `Stream reads routing records that are already sorted by
(claim_id, status_code) and holds only one group's edges in memory at a
time, so input size is unbounded.

If the input is not actually sorted, a key that reappears after other keys
is treated as a new group and its true cycle length may be undercounted.
With --check-order (the default) a validation pre-pass runs on re-readable
inputs and logs the first out-of-order line as a warning; the result is
still computed either way. Standard input cannot be re-read, so the check
is skipped there.

Use "-" to read standard input.

Example:
  routecycle stream sorted-records.txt
  routecycle stream --check-order=false sorted-records.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runStream,
}

func init() {
	streamCmd.Flags().BoolVar(&streamCheckOrder, "check-order", true,
		"Validate sort order before streaming (re-readable inputs only)")
	streamCmd.Flags().BoolVar(&streamSummary, "summary", false,
		"Print a human-readable summary after the result line")

	rootCmd.AddCommand(streamCmd)
}

func runStream(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	input := args[0]
	log = log.WithInput(input).WithMode("sorted")
	log.Debugf("starting streaming analysis")

	res, stats, err := analyzer.RunSortedPath(input, streamCheckOrder, analyzer.Options{
		Log:           log,
		ProgressEvery: cfg.Processing.ProgressEvery,
	})
	if err != nil {
		return err
	}

	log.Debugf("analysis done: %d groups in %s, peak %d edges",
		stats.Groups, stats.Duration, stats.PeakEdges)

	fmt.Fprintln(outputWriter, report.Line(res))
	if streamSummary {
		report.WriteSummary(outputWriter, res, stats)
	}
	return nil
}
