package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/routecycle/internal/analyzer"
	"github.com/dbsmedya/routecycle/internal/record"
	"github.com/dbsmedya/routecycle/internal/report"
	"github.com/dbsmedya/routecycle/internal/source"
)

var (
	scanTable   string
	scanSorted  bool
	scanSummary bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find the longest routing cycle in records read from MySQL",
	Long: `Scan streams routing records out of a MySQL table instead of a file.
The table must have source, destination, claim_id, and status_code columns.

With --sorted, rows are fetched ORDER BY claim_id, status_code and fed to
the streaming consumer, holding one group in memory at a time. Without it,
rows arrive in natural order and every group is buffered.

Example:
  routecycle scan --config routecycle.yaml --table claim_routing --sorted`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanTable, "table", "t", "",
		"Table to read records from (overrides database.table in config)")
	scanCmd.Flags().BoolVar(&scanSorted, "sorted", false,
		"Fetch rows ordered by key and use the streaming consumer")
	scanCmd.Flags().BoolVar(&scanSummary, "summary", false,
		"Print a human-readable summary after the result line")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	table := cfg.Database.Table
	if scanTable != "" {
		table = scanTable
	}
	if table == "" {
		return fmt.Errorf("no table given: set --table or database.table in the config")
	}

	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}

	log = log.WithInput("mysql:" + table)
	if scanSorted {
		log = log.WithMode("sorted")
	} else {
		log = log.WithMode("unsorted")
	}

	ctx := source.SetupSignalHandler()

	db := source.NewDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	opts := analyzer.Options{Log: log, ProgressEvery: cfg.Processing.ProgressEvery}
	var consumer interface {
		Add(rec record.Edge)
		Finish() analyzer.Result
		Stats() analyzer.Stats
	}
	if scanSorted {
		consumer = analyzer.NewStreamer(opts)
	} else {
		consumer = analyzer.NewAccumulator(opts)
	}

	start := time.Now()
	var records int64
	err = db.Stream(ctx, table, scanSorted, func(rec record.Edge) error {
		records++
		consumer.Add(rec)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to stream records from %s: %w", table, err)
	}

	res := consumer.Finish()
	stats := consumer.Stats()
	stats.Lines = records
	stats.Records = records
	stats.Duration = time.Since(start)

	log.Debugf("scan done: %d records, %d groups in %s", records, stats.Groups, stats.Duration)

	fmt.Fprintln(outputWriter, report.Line(res))
	if scanSummary {
		report.WriteSummary(outputWriter, res, stats)
	}
	return nil
}
