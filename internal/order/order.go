// Package order validates that a record stream is sorted by group key.
package order

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dbsmedya/routecycle/internal/record"
)

// Violation reports the first place a stream breaks non-decreasing key order.
type Violation struct {
	Line int        // 1-based line number of the offending record
	Prev record.Key // Key of the preceding record
	Curr record.Key // Key that ordered strictly before Prev
}

// String formats the violation for warning output.
func (v *Violation) String() string {
	return fmt.Sprintf("input not sorted by (claim_id, status_code): line %d has key (%s) after (%s)",
		v.Line, v.Curr.String(), v.Prev.String())
}

// Check scans the stream and returns the first ordering violation, or nil if
// every consecutive pair of record keys is non-decreasing. Line numbers count
// every line, including blank and malformed ones, which are skipped for the
// comparison itself. Scanning stops at the first violation.
func Check(r io.Reader) (*Violation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var prev record.Key
	havePrev := false
	line := 0
	for scanner.Scan() {
		line++
		rec, ok := record.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		if havePrev && rec.Key.Less(prev) {
			return &Violation{Line: line, Prev: prev, Curr: rec.Key}, nil
		}
		prev = rec.Key
		havePrev = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}
	return nil, nil
}

// CheckAndRewind runs Check on a re-readable source and seeks it back to the
// start so a full consuming pass can follow. The rewind happens whether or
// not a violation was found.
func CheckAndRewind(rs io.ReadSeeker) (*Violation, error) {
	v, err := Check(rs)
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return v, fmt.Errorf("failed to rewind input after order check: %w", err)
	}
	return v, nil
}
