package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/routecycle/internal/order"
	"github.com/dbsmedya/routecycle/internal/source"
)

var checkOrderCmd = &cobra.Command{
	Use:   "check-order <input|->",
	Short: "Check that input is sorted by (claim_id, status_code)",
	Long: `Check-order scans the input and reports the first line at which
consecutive record keys violate non-decreasing order. Line numbers are
1-based and count every line, including blank and malformed ones.

This is the precondition the stream command relies on. The check is
advisory: an unsorted input is reported, not treated as a failure.

Example:
  routecycle check-order records.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckOrder,
}

func init() {
	rootCmd.AddCommand(checkOrderCmd)
}

func runCheckOrder(cmd *cobra.Command, args []string) error {
	rc, _, err := source.Open(args[0])
	if err != nil {
		return err
	}
	defer rc.Close()

	v, err := order.Check(rc)
	if err != nil {
		return err
	}

	if v != nil {
		fmt.Fprintln(outputWriter, v.String())
		return nil
	}
	fmt.Fprintln(outputWriter, "input is sorted by (claim_id, status_code)")
	return nil
}
