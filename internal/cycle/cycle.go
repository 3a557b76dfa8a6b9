// Package cycle finds the longest simple directed cycle in a small graph.
package cycle

// Edge is one directed edge between two named vertices. Duplicate edges are
// legal and are kept as parallel entries in the adjacency list.
type Edge struct {
	From string
	To   string
}

// Longest returns the length (number of edges) of the longest simple cycle in
// the graph formed by edges, or 0 if no cycle exists. A self-loop counts as a
// cycle of length 1.
//
// Every distinct source vertex is tried as a start. Each search enumerates
// simple paths only (no vertex repeats on the current path), so the worst
// case is exponential in the group size; groups are expected to be small.
func Longest(edges []Edge) int {
	if len(edges) == 0 {
		return 0
	}

	adj := make(map[string][]string)
	var starts []string
	for _, e := range edges {
		if _, seen := adj[e.From]; !seen {
			starts = append(starts, e.From)
		}
		adj[e.From] = append(adj[e.From], e.To)
	}

	best := 0
	for _, start := range starts {
		if n := longestFrom(start, adj); n > best {
			best = n
		}
	}
	return best
}

// frame is one level of the iterative DFS: a vertex on the current path and
// the index of the next successor to try.
type frame struct {
	node string
	next int
}

// longestFrom runs a depth-first search over simple paths beginning at start
// and returns the longest cycle closing back at start, or 0 if none closes.
// The path is an explicit stack of frames; onPath gives O(1) membership
// checks for the simple-path constraint.
func longestFrom(start string, adj map[string][]string) int {
	stack := []frame{{node: start}}
	onPath := map[string]bool{start: true}

	best := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		succ := adj[top.node]

		if top.next < len(succ) {
			nb := succ[top.next]
			top.next++

			if nb == start {
				// Cycle closed. The path length equals the number of edges
				// traversed back to start; a single-frame path means a
				// self-loop, which counts as length 1.
				if n := len(stack); n > best {
					best = n
				}
			} else if !onPath[nb] {
				onPath[nb] = true
				stack = append(stack, frame{node: nb})
			}
			continue
		}

		// All successors tried: backtrack.
		delete(onPath, top.node)
		stack = stack[:len(stack)-1]
	}
	return best
}
