// Package report renders analysis results for the routecycle CLI.
package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/routecycle/internal/analyzer"
)

// Line returns the machine-readable result line, claimId,statusCode,cycleLength.
// When no group contains any cycle the line is "0,0,0".
func Line(res analyzer.Result) string {
	if !res.Found {
		return "0,0,0"
	}
	return fmt.Sprintf("%s,%s,%d", res.Key.ClaimID, res.Key.StatusCode, res.Length)
}

// WriteSummary writes a human-readable summary of the result and pass
// statistics as an aligned two-column table.
func WriteSummary(w io.Writer, res analyzer.Result, stats analyzer.Stats) {
	fmt.Fprintln(w, color.Bold.Sprint("=== Longest Routing Cycle ==="))

	if res.Found {
		writeRows(w, [][2]string{
			{"Claim ID", res.Key.ClaimID},
			{"Status code", res.Key.StatusCode},
			{"Cycle length", color.Green.Sprintf("%d", res.Length)},
		})
	} else {
		fmt.Fprintln(w, color.Yellow.Sprint("No cycle found in any group"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.Bold.Sprint("=== Pass Statistics ==="))
	writeRows(w, [][2]string{
		{"Lines read", fmt.Sprintf("%d", stats.Lines)},
		{"Records parsed", fmt.Sprintf("%d", stats.Records)},
		{"Lines skipped", fmt.Sprintf("%d", stats.Skipped)},
		{"Groups analyzed", fmt.Sprintf("%d", stats.Groups)},
		{"Peak group edges", fmt.Sprintf("%d", stats.PeakEdges)},
		{"Duration", stats.Duration.String()},
	})
}

// writeRows prints label/value pairs with labels padded to a common width.
// Padding uses display width so wide runes in labels stay aligned.
func writeRows(w io.Writer, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if n := runewidth.StringWidth(row[0]); n > width {
			width = n
		}
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(row[0], width), row[1])
	}
}
