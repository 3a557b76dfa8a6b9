package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/dbsmedya/routecycle/internal/order"
	"github.com/dbsmedya/routecycle/internal/record"
	"github.com/dbsmedya/routecycle/internal/source"
)

// consumer is the shared shape of Accumulator and Streamer.
type consumer interface {
	Add(rec record.Edge)
	Finish() Result
	Stats() Stats
}

// consume feeds every parsed record of r into c and returns the final Result
// with combined stats.
func consume(r io.Reader, c consumer) (Result, Stats, error) {
	start := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines, records, skipped int64
	for scanner.Scan() {
		lines++
		rec, ok := record.ParseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		records++
		c.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, Stats{}, fmt.Errorf("failed to scan input: %w", err)
	}

	res := c.Finish()
	stats := c.Stats()
	stats.Lines = lines
	stats.Records = records
	stats.Skipped = skipped
	stats.Duration = time.Since(start)
	return res, stats, nil
}

// RunUnsorted analyzes r in accumulation mode: all groups buffered, input
// order irrelevant.
func RunUnsorted(r io.Reader, opts Options) (Result, Stats, error) {
	return consume(r, NewAccumulator(opts))
}

// RunSorted analyzes r in streaming mode, holding one group at a time.
// The input must be sorted by (claim_id, status_code); see the Streamer
// documentation for the failure mode when it is not.
func RunSorted(r io.Reader, opts Options) (Result, Stats, error) {
	return consume(r, NewStreamer(opts))
}

// RunUnsortedPath analyzes the named input (a file path, or source.Stdin) in
// accumulation mode.
func RunUnsortedPath(path string, opts Options) (Result, Stats, error) {
	rc, _, err := source.Open(path)
	if err != nil {
		return Result{}, Stats{}, err
	}
	defer rc.Close()
	return RunUnsorted(rc, opts)
}

// RunSortedPath analyzes the named input (a file path, or source.Stdin) in
// streaming mode. With validate true, a sort-order pre-pass runs first on
// re-readable inputs and the first violation is logged as a warning; the
// computed Result is not altered. Standard input cannot be re-read, so there
// the check is skipped with a warning.
func RunSortedPath(path string, validate bool, opts Options) (Result, Stats, error) {
	opts = opts.normalized()

	rc, seekable, err := source.Open(path)
	if err != nil {
		return Result{}, Stats{}, err
	}
	defer rc.Close()

	if validate {
		if seekable {
			rs, ok := rc.(io.ReadSeeker)
			if !ok {
				return Result{}, Stats{}, fmt.Errorf("input %q reported seekable but cannot seek", path)
			}
			v, err := order.CheckAndRewind(rs)
			if err != nil {
				return Result{}, Stats{}, err
			}
			if v != nil {
				opts.Log.Warnf("%s; streaming results may undercount that key", v.String())
			}
		} else {
			opts.Log.Warnf("cannot check sort order on a non-seekable input; skipping validation")
		}
	}

	return RunSorted(rc, opts)
}
