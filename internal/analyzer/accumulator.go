package analyzer

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/routecycle/internal/cycle"
	"github.com/dbsmedya/routecycle/internal/record"
)

// Accumulator buffers every group in memory and analyzes them all once the
// stream ends. It accepts input in any order; all groups stay open until
// Finish. Groups are evaluated in first-seen order, which is safe because the
// reduction compares every group against the running best exactly once.
type Accumulator struct {
	opts   Options
	groups *orderedmap.OrderedMap[record.Key, *group]
	stats  Stats
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator(opts Options) *Accumulator {
	return &Accumulator{
		opts:   opts.normalized(),
		groups: orderedmap.NewOrderedMap[record.Key, *group](),
	}
}

// Add appends one edge to its group, creating the group on first sight.
func (a *Accumulator) Add(rec record.Edge) {
	g, ok := a.groups.Get(rec.Key)
	if !ok {
		g = &group{key: rec.Key}
		a.groups.Set(rec.Key, g)
	}
	g.add(rec)
	if len(g.edges) > a.stats.PeakEdges {
		a.stats.PeakEdges = len(g.edges)
	}
}

// Finish evaluates every buffered group and returns the best Result.
func (a *Accumulator) Finish() Result {
	best := Result{}
	total := a.groups.Len()
	for el := a.groups.Front(); el != nil; el = el.Next() {
		g := el.Value
		a.stats.Groups++
		if pe := a.opts.ProgressEvery; pe > 0 && a.stats.Groups%pe == 0 {
			a.opts.Log.Infof("progress: %d/%d groups analyzed", a.stats.Groups, total)
		}
		// A cycle is never longer than the group's edge count, so a group
		// smaller than the current best length cannot win or tie.
		if len(g.edges) < best.Length {
			continue
		}
		best = Reduce(best, g.key, cycle.Longest(g.edges))
	}
	return best
}

// Stats returns counters for the pass so far.
func (a *Accumulator) Stats() Stats {
	return a.stats
}
