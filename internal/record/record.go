// Package record defines the routing record types and line parsing for routecycle.
package record

import "strings"

// Delimiter separates the four fields of a routing record line.
const Delimiter = "|"

// Key identifies a routing group: all edges sharing one (claim, status) pair.
type Key struct {
	ClaimID    string
	StatusCode string
}

// Compare returns -1, 0, or 1 comparing keys component-wise:
// ClaimID first, then StatusCode.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.ClaimID, other.ClaimID); c != 0 {
		return c
	}
	return strings.Compare(k.StatusCode, other.StatusCode)
}

// Less reports whether k orders strictly before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// String returns the key in "claimId,statusCode" form.
func (k Key) String() string {
	return k.ClaimID + "," + k.StatusCode
}

// Edge represents one routing hop between two systems within a group.
type Edge struct {
	From string // Sending system name
	To   string // Receiving system name
	Key  Key    // Group this edge belongs to
}

// ParseLine parses one input line into an Edge.
// The format is source|destination|claimId|statusCode. Blank lines and lines
// that do not split into exactly four fields are skipped: ok is false and the
// caller emits no record. Trailing newlines are handled by the caller's
// line splitter, not here.
func ParseLine(line string) (Edge, bool) {
	if line == "" {
		return Edge{}, false
	}
	parts := strings.Split(line, Delimiter)
	if len(parts) != 4 {
		return Edge{}, false
	}
	return Edge{
		From: parts[0],
		To:   parts[1],
		Key:  Key{ClaimID: parts[2], StatusCode: parts[3]},
	}, true
}
