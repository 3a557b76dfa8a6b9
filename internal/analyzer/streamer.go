package analyzer

import (
	"github.com/dbsmedya/routecycle/internal/cycle"
	"github.com/dbsmedya/routecycle/internal/record"
)

// Streamer analyzes input sorted by group key while holding at most one open
// group. A key transition finalizes the open group, evaluates it, and drops
// its edges, so peak memory is bounded by the largest single group.
//
// The sort order is a precondition, not enforced here: if a key reappears
// after other keys, its edges form a second, separate group and the key's
// true cycle length may be undercounted. The order package detects this
// best-effort as an advisory warning.
type Streamer struct {
	opts    Options
	current *group
	best    Result
	stats   Stats
}

// NewStreamer creates a Streamer with no open group.
func NewStreamer(opts Options) *Streamer {
	return &Streamer{opts: opts.normalized()}
}

// Add appends one edge to the open group, finalizing it first if the key
// changed.
func (s *Streamer) Add(rec record.Edge) {
	if s.current == nil || s.current.key != rec.Key {
		s.finalize()
		s.current = &group{key: rec.Key}
	}
	s.current.add(rec)
	if len(s.current.edges) > s.stats.PeakEdges {
		s.stats.PeakEdges = len(s.current.edges)
	}
}

// finalize evaluates and discards the open group, if any.
func (s *Streamer) finalize() {
	if s.current == nil {
		return
	}
	s.stats.Groups++
	if pe := s.opts.ProgressEvery; pe > 0 && s.stats.Groups%pe == 0 {
		s.opts.Log.Infof("progress: %d groups analyzed", s.stats.Groups)
	}
	// Same pruning as the accumulator: too few edges to win or tie.
	if len(s.current.edges) >= s.best.Length {
		s.best = Reduce(s.best, s.current.key, cycle.Longest(s.current.edges))
	}
	s.current = nil
}

// Finish finalizes the last open group and returns the best Result.
func (s *Streamer) Finish() Result {
	s.finalize()
	return s.best
}

// Stats returns counters for the pass so far.
func (s *Streamer) Stats() Stats {
	return s.stats
}
