// Package analyzer implements the two group-analysis strategies for
// routecycle: an in-memory accumulator for arbitrarily ordered input and a
// streaming consumer for input sorted by group key. Both feed every finished
// group through the same pure reduction to pick the single best group.
package analyzer

import (
	"time"

	"github.com/dbsmedya/routecycle/internal/cycle"
	"github.com/dbsmedya/routecycle/internal/logger"
	"github.com/dbsmedya/routecycle/internal/record"
)

// Result is the running best group found so far. Found is false for the
// identity value, which is also the final answer when no group contains any
// cycle.
type Result struct {
	Key    record.Key
	Length int
	Found  bool
}

// Stats describes one analysis pass.
type Stats struct {
	Lines     int64         // All input lines seen, including skipped ones
	Records   int64         // Lines that parsed into a record
	Skipped   int64         // Blank or malformed lines
	Groups    int           // Groups evaluated
	PeakEdges int           // Largest edge count held by any single group
	Duration  time.Duration // Wall time for the pass
}

// Options configures an analysis pass.
type Options struct {
	Log           *logger.Logger
	ProgressEvery int // Groups between progress log lines; <= 0 disables
}

func (o Options) normalized() Options {
	if o.Log == nil {
		o.Log = logger.NewDefault()
	}
	return o
}

// Reduce folds one evaluated group into the running best. A group wins when
// its cycle length strictly exceeds the best, or equals it with a
// lexicographically smaller key. Groups without a cycle never install a key,
// so the no-winner state stays distinguishable.
func Reduce(best Result, key record.Key, length int) Result {
	if length <= 0 {
		return best
	}
	if length > best.Length || (length == best.Length && (!best.Found || key.Less(best.Key))) {
		return Result{Key: key, Length: length, Found: true}
	}
	return best
}

// group collects the edges sharing one key, in input order. Duplicate edges
// are retained and all participate in the search.
type group struct {
	key   record.Key
	edges []cycle.Edge
}

func (g *group) add(rec record.Edge) {
	g.edges = append(g.edges, cycle.Edge{From: rec.From, To: rec.To})
}
